package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir stands in for t.Chdir, which needs Go 1.24; this module builds with 1.21.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func defaultConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CSV.Delimiter = ","
	c.Server.Port = 8080
	c.Server.Mode = "release"
	c.Data.Directory = "data/projects"
	c.Generate.TemplateVariant = "porcelain"
	c.Generate.MaterialLabels = "standard"
	return c
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no config file in reach

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/projects", cfg.Data.Directory)
	assert.Equal(t, "porcelain", cfg.Generate.TemplateVariant)
	assert.Equal(t, "standard", cfg.Generate.MaterialLabels)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FCR_LOG_LEVEL", "debug")
	t.Setenv("FCR_CSV_DELIMITER", ";")
	t.Setenv("FCR_GENERATE_MATERIAL_LABELS", "short")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, "short", cfg.Generate.MaterialLabels)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults valid", func(c *Config) {}, false},
		{"Bad log level", func(c *Config) { c.Log.Level = "chatty" }, true},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"Multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",," }, true},
		{"Empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }, true},
		{"Port out of range", func(c *Config) { c.Server.Port = 0 }, true},
		{"Unknown template variant", func(c *Config) { c.Generate.TemplateVariant = "fancy" }, true},
		{"Unknown label set", func(c *Config) { c.Generate.MaterialLabels = "long" }, true},
		{"Description variant valid", func(c *Config) { c.Generate.TemplateVariant = "description" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOutputDelimiter(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, ',', cfg.OutputDelimiter())

	cfg.CSV.Delimiter = "\t"
	assert.Equal(t, '\t', cfg.OutputDelimiter())
}
