package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvil-engine/anvil/engine/core"
)

func TestAllocatorReusesReleasedSlots(t *testing.T) {
	alloc := core.NewAllocator()

	a := alloc.AcquireID("a")
	b := alloc.AcquireID("b")
	c := alloc.AcquireID("c")
	assert.Equal(t, uint32(0), a)
	assert.Equal(t, uint32(1), b)
	assert.Equal(t, uint32(2), c)

	require.NoError(t, alloc.ReleaseID(b))
	assert.Equal(t, b, alloc.AcquireID("d"), "released slot must be reused")
	assert.Equal(t, uint32(3), alloc.AcquireID("e"))
}

func TestAllocatorRejectsUnknownIDs(t *testing.T) {
	alloc := core.NewAllocator()
	assert.Error(t, alloc.ReleaseID(99))
}
