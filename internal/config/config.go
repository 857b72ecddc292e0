package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Facing policies for PLACE commands whose facing word is not recognised.
const (
	PolicyLenient = "lenient" // fall back to NORTH
	PolicyStrict  = "strict"  // reject the command
)

// Config holds the tabletop settings.
type Config struct {
	Grid         GridConfig    `yaml:"grid"`
	FacingPolicy string        `yaml:"facing_policy"`
	Render       RenderConfig  `yaml:"render"`
	Logging      LoggingConfig `yaml:"logging"`
}

// GridConfig places a Width x Height table with its low corner at (MinX, MinY).
type GridConfig struct {
	MinX   int `yaml:"min_x"`
	MinY   int `yaml:"min_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type RenderConfig struct {
	Enabled bool          `yaml:"enabled"`
	Delay   time.Duration `yaml:"delay"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func DefaultConfig() *Config {
	return &Config{
		Grid:         GridConfig{Width: 5, Height: 5},
		FacingPolicy: PolicyLenient,
		Logging:      LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	ints := []struct {
		env string
		dst *int
	}{
		{"TABLETOP_GRID_WIDTH", &c.Grid.Width},
		{"TABLETOP_GRID_HEIGHT", &c.Grid.Height},
	}
	for _, o := range ints {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", o.env, err)
		}
		*o.dst = n
	}

	if v := os.Getenv("TABLETOP_FACING_POLICY"); v != "" {
		c.FacingPolicy = strings.ToLower(v)
	}
	if v := os.Getenv("TABLETOP_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	switch c.FacingPolicy {
	case PolicyLenient, PolicyStrict:
	default:
		return fmt.Errorf("unknown facing_policy %q", c.FacingPolicy)
	}
	if c.Render.Delay < 0 {
		return fmt.Errorf("render delay must not be negative")
	}
	return nil
}

// Strict reports whether unknown facings are rejected.
func (c *Config) Strict() bool {
	return c.FacingPolicy == PolicyStrict
}

// Bounds returns the inclusive grid bounds.
func (g GridConfig) Bounds() (minX, maxX, minY, maxY int) {
	return g.MinX, g.MinX + g.Width - 1, g.MinY, g.MinY + g.Height - 1
}
