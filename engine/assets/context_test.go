package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvil-engine/anvil/engine/assets"
)

func TestCacheInsertAndReplace(t *testing.T) {
	pool := newTestPool(t)

	var cache assets.FutureCache[int]
	spec := assets.NewAssetSpec("teapot", "mesh", 0)

	_, ok := cache.Retrieve(spec)
	assert.False(t, ok)

	first := assets.Spawn(pool, func() (int, error) { return 1, nil })
	cache.Cache(spec, first)

	got, ok := cache.Retrieve(spec)
	require.True(t, ok)
	v, err := pollUntil(t, got)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Replacement swaps the slot without touching the old future.
	second := assets.Spawn(pool, func() (int, error) { return 2, nil })
	cache.Cache(spec, second)

	got, ok = cache.Retrieve(spec)
	require.True(t, ok)
	v, err = pollUntil(t, got)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = pollUntil(t, first)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.Equal(t, 1, cache.Len())
}
