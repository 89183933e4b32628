// Package config provides configuration loading for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wormy/game/entity"
	"wormy/game/types"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all startup parameters.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Grid   GridConfig   `yaml:"grid"`
	Worm   WormConfig   `yaml:"worm"`
	Apple  AppleConfig  `yaml:"apple"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

type WormConfig struct {
	InitialLength  int `yaml:"initial_length"`
	GrowthPerApple int `yaml:"growth_per_apple"`
}

// AppleConfig holds the apple's scoring. Each tick the point value becomes
// value * decay_numerator / decay_denominator, truncated.
type AppleConfig struct {
	DefaultPointValue int `yaml:"default_point_value"`
	DecayNumerator    int `yaml:"decay_numerator"`
	DecayDenominator  int `yaml:"decay_denominator"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the game cannot start without.
func (c *Config) Validate() error {
	if _, err := c.GridGeometry(); err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Worm.InitialLength <= 0 {
		return fmt.Errorf("worm.initial_length must be positive, got %d", c.Worm.InitialLength)
	}
	if c.Worm.GrowthPerApple < 0 {
		return fmt.Errorf("worm.growth_per_apple must not be negative, got %d", c.Worm.GrowthPerApple)
	}
	if c.Apple.DecayDenominator <= 0 {
		return fmt.Errorf("apple.decay_denominator must be positive, got %d", c.Apple.DecayDenominator)
	}
	if c.Apple.DecayNumerator < 0 || c.Apple.DecayNumerator > c.Apple.DecayDenominator {
		return fmt.Errorf("apple.decay_numerator must be in [0, %d], got %d", c.Apple.DecayDenominator, c.Apple.DecayNumerator)
	}
	return nil
}

// GridGeometry derives the cell grid from the screen size.
func (c *Config) GridGeometry() (types.Grid, error) {
	return types.NewGrid(c.Screen.Width, c.Screen.Height, c.Grid.CellSize)
}

func (c *Config) AppleSettings() entity.AppleConfig {
	return entity.AppleConfig{
		DefaultPointValue: c.Apple.DefaultPointValue,
		DecayNumerator:    c.Apple.DecayNumerator,
		DecayDenominator:  c.Apple.DecayDenominator,
	}
}
