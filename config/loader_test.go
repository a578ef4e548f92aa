package config_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sandeepkvelagam/oddside/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, runtime.NumCPU(), cfg.BatchWorkers)
	assert.Equal(t, 256, cfg.MaxBatch)
	assert.True(t, cfg.RejectDuplicates)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty addr", func(c *config.Config) { c.Addr = "" }},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "verbose" }},
		{"no batch workers", func(c *config.Config) { c.BatchWorkers = 0 }},
		{"no batch size", func(c *config.Config) { c.MaxBatch = 0 }},
		{"negative history", func(c *config.Config) { c.HistoryLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oddside.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"addr: \":9000\"\nlog_level: debug\nmax_batch: 10\nreject_duplicates: false\n"), 0o600))

	t.Setenv(config.EnvConfigFile, path)
	t.Setenv("ODDSIDE_MAX_BATCH", "20")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.MaxBatch, "env overrides the file")
	assert.False(t, cfg.RejectDuplicates)
	assert.Equal(t, 100, cfg.HistoryLimit, "unset keys keep their defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(config.EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := config.Load(context.Background())
	assert.ErrorIs(t, err, config.ErrLoadConfig)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv("ODDSIDE_LOG_LEVEL", "loud")

	_, err := config.Load(context.Background())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
