// Package config loads the optional YAML configuration of the sorts CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dendrascience/sorts/sorts"
)

// Config holds all sorts CLI configuration.
type Config struct {
	// Default sort engine: quick or merge
	Algorithm string `yaml:"algorithm"`

	Generator GeneratorConfig `yaml:"generator"`
	Bench     BenchConfig     `yaml:"bench"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig configures generated sequences.
type GeneratorConfig struct {
	Count int    `yaml:"count"`
	Min   int    `yaml:"min"`  // inclusive
	Max   int    `yaml:"max"`  // exclusive
	Seed  uint64 `yaml:"seed"` // 0 seeds from the clock
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	Runs     int `yaml:"runs"`
	Count    int `yaml:"count"`
	Parallel int `yaml:"parallel"` // concurrent trials
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Algorithm: string(sorts.AlgorithmQuick),
		Generator: GeneratorConfig{
			Count: 1000,
			Min:   -10000,
			Max:   10000,
		},
		Bench: BenchConfig{
			Runs:     5,
			Count:    100000,
			Parallel: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults;
// a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if _, err := sorts.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.Generator.Count <= 0 {
		return fmt.Errorf("generator count must be positive, got %d", c.Generator.Count)
	}
	if c.Generator.Max <= c.Generator.Min {
		return fmt.Errorf("generator max (%d) must exceed min (%d)", c.Generator.Max, c.Generator.Min)
	}
	if c.Bench.Runs <= 0 || c.Bench.Count <= 0 || c.Bench.Parallel <= 0 {
		return fmt.Errorf("bench runs, count and parallel must be positive, got %d, %d, %d",
			c.Bench.Runs, c.Bench.Count, c.Bench.Parallel)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}
