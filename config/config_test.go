package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "gemini-2.5-flash", cfg.FallbackModel)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 7, cfg.RetentionDays)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("UTTERGEN_PROVIDER", "mock")
	t.Setenv("UTTERGEN_RETENTION_DAYS", "14")
	t.Setenv("UTTERGEN_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.Provider)
	assert.Equal(t, 14, cfg.RetentionDays)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromFileAndEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gemini-2.0-pro\nretention_days: 3\n"), 0o644))
	t.Setenv("UTTERGEN_RETENTION_DAYS", "21")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-pro", cfg.Model, "file value overrides default")
	assert.Equal(t, 21, cfg.RetentionDays, "env overrides file")
}

func TestLoadRejectsInvalidProvider(t *testing.T) {
	t.Setenv("UTTERGEN_PROVIDER", "carrier-pigeon")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("UTTERGEN_LOG_LEVEL", "shouting")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
