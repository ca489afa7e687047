// Package config loads the junction run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all junction settings. Command-line flags override it.
type Config struct {
	// Input is the points file; "-" or "" reads stdin.
	Input string `yaml:"input"`

	// Circuits configures the k-closest-pairs sizing.
	Circuits CircuitsConfig `yaml:"circuits"`

	// Pairs configures the pair listing.
	Pairs PairsConfig `yaml:"pairs"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// CircuitsConfig configures `junction circuits`.
type CircuitsConfig struct {
	Connections int `yaml:"connections"` // closest pairs to join
	Top         int `yaml:"top"`         // largest circuits to multiply
}

// PairsConfig configures `junction pairs`.
type PairsConfig struct {
	Limit int `yaml:"limit"` // 0 prints every pair
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: "-",
		Circuits: CircuitsConfig{
			Connections: 1000,
			Top:         3,
		},
		Pairs: PairsConfig{
			Limit: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults;
// a path that cannot be read, including a missing file, is an error
// (errors.Is(err, os.ErrNotExist) for the latter). Environment overrides
// are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides lets JUNCTION_INPUT and JUNCTION_LOG_LEVEL win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("JUNCTION_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("JUNCTION_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks ranges and the log level.
func (c *Config) Validate() error {
	if c.Circuits.Connections <= 0 {
		return fmt.Errorf("%w: circuits.connections must be positive, got %d", ErrInvalid, c.Circuits.Connections)
	}
	if c.Circuits.Top <= 0 {
		return fmt.Errorf("%w: circuits.top must be positive, got %d", ErrInvalid, c.Circuits.Top)
	}
	if c.Pairs.Limit < 0 {
		return fmt.Errorf("%w: pairs.limit cannot be negative, got %d", ErrInvalid, c.Pairs.Limit)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses Log.Level into a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	return lvl, nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}
