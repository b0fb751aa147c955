package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for configuration:
// - Defaults load when no config file exists
// - Config file values override defaults
// - Environment variables override the config file
// - Validation rejects empty patterns, bad globs, negative workers

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, defaults.Paths.Source, cfg.Paths.Source)
	assert.Equal(t, defaults.Paths.Ignore, cfg.Paths.Ignore)
	assert.Equal(t, defaults.Output.Dir, cfg.Output.Dir)
	assert.Equal(t, defaults.Output.Pretty, cfg.Output.Pretty)
	assert.Equal(t, defaults.Engine.Incremental, cfg.Engine.Incremental)
	assert.Greater(t, cfg.Engine.Workers, 0)
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configDir := filepath.Join(root, ".docgen")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	configYAML := `
paths:
  source:
    - "lib/**/*.ts"
  ignore:
    - "lib/vendor/**"
output:
  dir: out
  pretty: false
engine:
  workers: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(configYAML), 0644))

	cfg, err := LoadConfigFromDir(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"lib/**/*.ts"}, cfg.Paths.Source)
	assert.Equal(t, []string{"lib/vendor/**"}, cfg.Paths.Ignore)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.False(t, cfg.Output.Pretty)
	assert.Equal(t, 3, cfg.Engine.Workers)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DOCGEN_OUTPUT_DIR", "env-out")

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-out", cfg.Output.Dir)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"no source patterns", func(c *Config) { c.Paths.Source = nil }, "paths.source"},
		{"empty source pattern", func(c *Config) { c.Paths.Source = []string{" "} }, "empty pattern"},
		{"invalid ignore glob", func(c *Config) { c.Paths.Ignore = []string{"[unclosed"} }, "invalid"},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }, "output.dir"},
		{"negative workers", func(c *Config) { c.Engine.Workers = -1 }, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
