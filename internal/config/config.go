// Package config loads dungeonseed configuration from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeonseed/internal/logger"
	"github.com/samdwyer/dungeonseed/internal/telemetry"
	"github.com/samdwyer/dungeonseed/internal/world"
)

// defaultYAML holds the built-in defaults.
//
//go:embed default.yaml
var defaultYAML []byte

// Config is the top-level configuration.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Logging    logger.Config    `yaml:"logging"`
	Telemetry  telemetry.Config `yaml:"telemetry"`
}

// GenerationConfig holds the inputs of a generation run.
type GenerationConfig struct {
	// Seed for random number generation. 0 means a random seed is chosen
	// at startup.
	Seed   int64 `yaml:"seed"`
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	// HeaderOffset reserves rows above the map for the renderer. It has no
	// effect on generation.
	HeaderOffset int          `yaml:"header_offset"`
	Params       world.Params `yaml:"params"`
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Errorf("config: embedded defaults are invalid: %w", err))
	}
	return &cfg
}

// LoadConfig loads configuration from a YAML file merged over the defaults.
// An empty path or missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the generation settings describe a usable grid.
func (c *Config) Validate() error {
	g := c.Generation
	if g.HeaderOffset < 0 {
		return fmt.Errorf("%w: header offset %d is negative", world.ErrConfiguration, g.HeaderOffset)
	}
	return g.Params.Validate(g.Width, g.Height)
}
