package engine

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/anvil-engine/anvil/engine/assets"
	"github.com/anvil-engine/anvil/engine/core"
	"github.com/anvil-engine/anvil/engine/systems"
)

// JobsConfig sizes the worker pool.
type JobsConfig struct {
	// Number of worker goroutines. Defaults to the number of CPUs.
	Workers int `toml:"workers"`
	// Capacity of the task queue.
	QueueSize int `toml:"queue_size"`
}

// AssetsConfig locates the stores.
type AssetsConfig struct {
	// The relative base path of the default store.
	BasePath string `toml:"base_path"`
	// Additional named directory stores, name -> root path.
	Stores map[string]string `toml:"stores"`
}

// Config drives engine startup. It is usually read from a TOML file.
type Config struct {
	// The application name used in logs.
	Name     string       `toml:"name"`
	LogLevel string       `toml:"log_level"`
	Jobs     JobsConfig   `toml:"jobs"`
	Assets   AssetsConfig `toml:"assets"`
}

// DefaultConfig returns a config that works without any file on disk.
func DefaultConfig() *Config {
	return &Config{
		Name:     "anvil",
		LogLevel: "debug",
		Jobs: JobsConfig{
			Workers:   runtime.NumCPU(),
			QueueSize: 64,
		},
		Assets: AssetsConfig{
			BasePath: "assets",
		},
	}
}

// LoadConfig reads a TOML config file, filling unset fields with defaults.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(b, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if config.Jobs.Workers <= 0 {
		config.Jobs.Workers = runtime.NumCPU()
	}
	if config.Jobs.QueueSize < 0 {
		config.Jobs.QueueSize = 0
	}
	return config, nil
}

func (c *Config) logLevel() core.LogLevel {
	switch c.LogLevel {
	case "debug":
		return core.LogLevelDebug
	case "info":
		return core.LogLevelInfo
	case "warn":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// Engine wires the allocator, the job system and the asset loader
// together. It is created once and handed to whatever issues loads;
// there is no implicit global instance.
type Engine struct {
	config    *Config
	allocator *core.Allocator
	jobs      *systems.JobSystem
	loader    *assets.Loader
}

func New(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	core.SetLogLevel(config.logLevel())

	jobs, err := systems.NewJobSystem(config.Jobs.Workers, config.Jobs.QueueSize)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	allocator := core.NewAllocator()
	loader := assets.NewLoader(allocator, config.Assets.BasePath, jobs)
	for name, root := range config.Assets.Stores {
		loader.AddStore(name, assets.NewDirectory(allocator, root))
	}

	core.LogInfo("%s initialized with %d workers, default store '%s'", config.Name, config.Jobs.Workers, config.Assets.BasePath)

	return &Engine{
		config:    config,
		allocator: allocator,
		jobs:      jobs,
		loader:    loader,
	}, nil
}

func (e *Engine) Loader() *assets.Loader {
	return e.loader
}

func (e *Engine) Jobs() *systems.JobSystem {
	return e.jobs
}

func (e *Engine) Allocator() *core.Allocator {
	return e.allocator
}

// Shutdown drains the job queue and stops the workers. Futures already
// handed out resolve before this returns.
func (e *Engine) Shutdown() error {
	core.LogInfo("%s shutting down", e.config.Name)
	return e.jobs.Shutdown()
}
