package testbed_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvil-engine/anvil/engine"
	"github.com/anvil-engine/anvil/testbed"
)

func writeFile(t *testing.T, root, category, file string, content []byte) {
	t.Helper()
	dir := filepath.Join(root, category)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), content, 0o644))
}

func TestGameLoadsAssetsEndToEnd(t *testing.T) {
	root := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	writeFile(t, root, "textures", "stone.png", buf.Bytes())

	writeFile(t, root, "materials", "stone.amt", []byte(`
name = "stone"
shader = "Builtin.Shader.World"
diffuse_colour = [1.0, 1.0, 1.0, 1.0]
`))

	config := engine.DefaultConfig()
	config.Assets.BasePath = root

	e, err := engine.New(config)
	require.NoError(t, err)

	game := testbed.NewTestGame(e, []string{"stone", "absent"}, []string{"stone"})
	require.NoError(t, game.Run(), "missing demo assets are logged, not fatal")

	metrics := e.Loader().Metrics()
	assert.Equal(t, uint64(3), metrics.Dispatches())

	require.NoError(t, e.Shutdown())
}
