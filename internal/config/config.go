// Package config loads runtime settings from the environment
package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/nightcaste/internal/behaviours"
	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig

	// WorldID selects the persisted world; empty starts a new one
	WorldID string `env:"NIGHTCASTE_WORLD_ID"`

	Tick           time.Duration `env:"NIGHTCASTE_TICK" envDefault:"100ms"`
	BehavioursFile string        `env:"NIGHTCASTE_BEHAVIOURS_FILE"`
	Debug          bool          `env:"NIGHTCASTE_DEBUG"`
	Sound          bool          `env:"NIGHTCASTE_SOUND"`

	// Behaviours is read from BehavioursFile, or DefaultBindings when unset
	Behaviours []behaviours.Binding `env:"-"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL such as redis://localhost:6379/0; empty keeps the world in memory
	URL string `env:"NIGHTCASTE_REDIS_URL"`
}

// bindingFile is the on-disk shape of the behaviour configuration
type bindingFile struct {
	ComponentBehaviours []behaviours.Binding `json:"component_behaviours"`
}

// DefaultBindings attaches the built-in behaviours to their components
func DefaultBindings() []behaviours.Binding {
	return []behaviours.Binding{
		{ComponentType: components.TypeInput, Name: behaviours.InputBehaviourName},
		{ComponentType: components.TypeWander, Name: behaviours.WanderBehaviourName},
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeConfiguration, "parse env")
	}

	if cfg.Tick <= 0 {
		return nil, errors.Configurationf("NIGHTCASTE_TICK must be positive, got %s", cfg.Tick)
	}

	if cfg.BehavioursFile == "" {
		cfg.Behaviours = DefaultBindings()
		return cfg, nil
	}

	bindings, err := LoadBindings(cfg.BehavioursFile)
	if err != nil {
		return nil, err
	}
	cfg.Behaviours = bindings
	return cfg, nil
}

// LoadBindings reads a behaviour binding file:
//
//	{"component_behaviours": [{"component_type": "Input", "name": "InputBehaviour"}]}
func LoadBindings(path string) ([]behaviours.Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeConfiguration, "reading behaviours file").
			WithMeta("path", path)
	}

	var file bindingFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeConfiguration, "parsing behaviours file").
			WithMeta("path", path)
	}

	for i, b := range file.ComponentBehaviours {
		if b.ComponentType == "" || b.Name == "" {
			return nil, errors.Configurationf("behaviours file entry %d needs component_type and name", i).
				WithMeta("path", path)
		}
	}
	return file.ComponentBehaviours, nil
}
