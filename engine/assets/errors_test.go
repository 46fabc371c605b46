package assets_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvil-engine/anvil/engine/assets"
)

func TestAssetErrorChain(t *testing.T) {
	cause := errors.New("permission denied")
	err := &assets.AssetError{
		Spec:  assets.NewAssetSpec("missing", "mesh", 0),
		Cause: assets.LoadError{Stage: assets.StageStorage, Err: cause},
	}

	assert.ErrorIs(t, err, cause)

	var loadErr assets.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Equal(t, assets.StageStorage, loadErr.Stage)

	assert.Equal(t, "failed to load asset 'missing.mesh@store:0': storage error: permission denied", err.Error())
}

func TestLoadStageNames(t *testing.T) {
	assert.Equal(t, "storage", assets.StageStorage.String())
	assert.Equal(t, "format", assets.StageFormat.String())
	assert.Equal(t, "asset", assets.StageAsset.String())
}
