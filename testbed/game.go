package testbed

import (
	"fmt"
	"time"

	"github.com/anvil-engine/anvil/engine"
	"github.com/anvil-engine/anvil/engine/assets"
	"github.com/anvil-engine/anvil/engine/assets/formats"
	"github.com/anvil-engine/anvil/engine/core"
	"github.com/anvil-engine/anvil/engine/systems"
)

// Texture is the demo's final asset: decoded pixels ready for upload.
type Texture struct {
	Name         string
	Width        uint32
	Height       uint32
	ChannelCount uint8
	Pixels       []uint8
}

// TextureContext turns decoded image data into Textures. The embedded
// cache keeps one future per spec for the lifetime of the context.
type TextureContext struct {
	assets.FutureCache[*Texture]
}

func (c *TextureContext) Category() string {
	return "textures"
}

func (c *TextureContext) CreateAsset(data *formats.ImageData, pool *systems.JobSystem) (*Texture, error) {
	if len(data.Pixels) == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}
	return &Texture{
		Width:        data.Width,
		Height:       data.Height,
		ChannelCount: data.ChannelCount,
		Pixels:       data.Pixels,
	}, nil
}

// Material is the demo's second asset type, built from .amt files.
type Material struct {
	Name          string
	ShaderName    string
	DiffuseColour []float32
	Shininess     float32
}

type MaterialContext struct {
	assets.FutureCache[*Material]
}

func (c *MaterialContext) Category() string {
	return "materials"
}

func (c *MaterialContext) CreateAsset(config *formats.MaterialConfig, pool *systems.JobSystem) (*Material, error) {
	return &Material{
		Name:          config.Name,
		ShaderName:    config.ShaderName,
		DiffuseColour: config.DiffuseColour,
		Shininess:     config.Shininess,
	}, nil
}

// TestGame issues a handful of loads against a running engine and polls
// their futures to completion, the way an ECS world would once per tick.
type TestGame struct {
	engine    *engine.Engine
	textures  []string
	materials []string
}

func NewTestGame(e *engine.Engine, textures, materials []string) *TestGame {
	assets.Register(e.Loader(), &TextureContext{})
	assets.Register(e.Loader(), &MaterialContext{})
	return &TestGame{
		engine:    e,
		textures:  textures,
		materials: materials,
	}
}

// Run loads everything, then polls until every future resolves. Failures
// are logged, not fatal; a missing demo asset should not kill the run.
func (g *TestGame) Run() error {
	loader := g.engine.Loader()

	textureFutures := make(map[string]assets.AssetFuture[*Texture], len(g.textures))
	for _, name := range g.textures {
		textureFutures[name] = assets.Load[*Texture](loader, name, formats.PNG{FlipY: true})
	}
	materialFutures := make(map[string]assets.AssetFuture[*Material], len(g.materials))
	for _, name := range g.materials {
		materialFutures[name] = assets.Load[*Material](loader, name, formats.Material{})
	}

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for len(textureFutures)+len(materialFutures) > 0 {
		<-ticker.C

		for name, future := range textureFutures {
			texture, ready, err := future.Poll()
			if !ready {
				continue
			}
			if err != nil {
				core.LogError("texture '%s': %v", name, err)
			} else {
				core.LogInfo("texture '%s' ready: %dx%d, %d channels", name, texture.Width, texture.Height, texture.ChannelCount)
			}
			delete(textureFutures, name)
		}

		for name, future := range materialFutures {
			material, ready, err := future.Poll()
			if !ready {
				continue
			}
			if err != nil {
				core.LogError("material '%s': %v", name, err)
			} else {
				core.LogInfo("material '%s' ready: shader '%s'", name, material.ShaderName)
			}
			delete(materialFutures, name)
		}
	}

	metrics := loader.Metrics()
	core.LogInfo("done: %d dispatches, %d cache hits, %d reloads", metrics.Dispatches(), metrics.CacheHits(), metrics.Reloads())
	return nil
}
