package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/sorts/sorts"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "quick", cfg.Algorithm)
	assert.Equal(t, -10000, cfg.Generator.Min)
	assert.Equal(t, 10000, cfg.Generator.Max)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sorts.yaml")
	data := `algorithm: merge
generator:
  count: 50
  seed: 7
logging:
  level: debug
  development: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "merge", cfg.Algorithm)
	assert.Equal(t, 50, cfg.Generator.Count)
	assert.Equal(t, uint64(7), cfg.Generator.Seed)
	// Untouched keys keep their defaults.
	assert.Equal(t, -10000, cfg.Generator.Min)
	assert.Equal(t, 5, cfg.Bench.Runs)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("algorithm: [unclosed"), 0644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("algorithm: bubble\n"), 0644))
		_, err := Load(path)
		assert.ErrorIs(t, err, sorts.ErrOutOfRange)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown algorithm", mutate: func(c *Config) { c.Algorithm = "heap" }},
		{name: "zero count", mutate: func(c *Config) { c.Generator.Count = 0 }},
		{name: "inverted bounds", mutate: func(c *Config) { c.Generator.Min, c.Generator.Max = 5, 5 }},
		{name: "zero runs", mutate: func(c *Config) { c.Bench.Runs = 0 }},
		{name: "negative parallel", mutate: func(c *Config) { c.Bench.Parallel = -1 }},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sorts.yaml")
	cfg := Default()
	cfg.Algorithm = "merge"
	cfg.Bench.Parallel = 4

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
