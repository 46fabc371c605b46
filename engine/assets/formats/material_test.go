package formats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvil-engine/anvil/engine/assets/formats"
)

const sampleMaterial = `
name = "cobblestone"
shader = "Builtin.Shader.World"
diffuse_colour = [1.0, 0.5, 0.25, 1.0]
shininess = 8.0
diffuse_map = "cobblestone_d"
`

func TestMaterialParse(t *testing.T) {
	config, err := formats.Material{}.Parse([]byte(sampleMaterial), nil)
	require.NoError(t, err)

	assert.Equal(t, "cobblestone", config.Name)
	assert.Equal(t, "Builtin.Shader.World", config.ShaderName)
	assert.Equal(t, []float32{1, 0.5, 0.25, 1}, config.DiffuseColour)
	assert.Equal(t, float32(8), config.Shininess)
	assert.Equal(t, "cobblestone_d", config.DiffuseMapName)
}

func TestMaterialParseDefaults(t *testing.T) {
	config, err := formats.Material{}.Parse([]byte(`name = "flat"`), nil)
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 1, 1, 1}, config.DiffuseColour)
	assert.Equal(t, float32(32), config.Shininess)
}

func TestMaterialParseRequiresAName(t *testing.T) {
	_, err := formats.Material{}.Parse([]byte(`shininess = 1.0`), nil)
	assert.Error(t, err)
}

func TestMaterialParseRejectsBadColour(t *testing.T) {
	_, err := formats.Material{}.Parse([]byte("name = \"x\"\ndiffuse_colour = [1.0, 1.0]"), nil)
	assert.Error(t, err)
}

func TestMaterialParseRejectsBadTOML(t *testing.T) {
	_, err := formats.Material{}.Parse([]byte("name = ["), nil)
	assert.Error(t, err)
}
