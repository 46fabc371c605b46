package formats

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/anvil-engine/anvil/engine/systems"
)

// MaterialConfig is the parsed form of an .amt material file.
type MaterialConfig struct {
	Name            string    `toml:"name"`
	ShaderName      string    `toml:"shader"`
	AutoRelease     bool      `toml:"auto_release"`
	DiffuseColour   []float32 `toml:"diffuse_colour"`
	Shininess       float32   `toml:"shininess"`
	DiffuseMapName  string    `toml:"diffuse_map"`
	SpecularMapName string    `toml:"specular_map"`
	NormalMapName   string    `toml:"normal_map"`
}

// Material parses .amt files, TOML documents describing one material.
type Material struct{}

func (Material) Extension() string {
	return "amt"
}

func (Material) Parse(b []byte, pool *systems.JobSystem) (*MaterialConfig, error) {
	config := &MaterialConfig{
		// Sensible defaults for fields the file may omit.
		DiffuseColour: []float32{1, 1, 1, 1},
		Shininess:     32.0,
	}
	if err := toml.Unmarshal(b, config); err != nil {
		return nil, fmt.Errorf("parsing material: %w", err)
	}
	if config.Name == "" {
		return nil, fmt.Errorf("material file is missing the 'name' field")
	}
	if len(config.DiffuseColour) != 4 {
		return nil, fmt.Errorf("diffuse_colour needs 4 components, got %d", len(config.DiffuseColour))
	}
	return config, nil
}
