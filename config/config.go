// Package config defines service configuration and how it is loaded.
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// BatchWorkers bounds how many evaluations of one batch run at once.
	BatchWorkers int `koanf:"batch_workers"`

	// MaxBatch caps the number of requests in a single batch call.
	MaxBatch int `koanf:"max_batch"`

	// RejectDuplicates refuses pools that contain the same card twice.
	RejectDuplicates bool `koanf:"reject_duplicates"`

	// HistoryLimit caps the events kept per session. Zero keeps everything.
	HistoryLimit int `koanf:"history_limit"`

	// AllowedOrigin is sent as Access-Control-Allow-Origin and checked on websocket upgrades.
	AllowedOrigin string `koanf:"allowed_origin"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		BatchWorkers:     runtime.NumCPU(),
		MaxBatch:         256,
		RejectDuplicates: true,
		HistoryLimit:     100,
		AllowedOrigin:    "*",
	}
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("%w: batch_workers must be at least 1", ErrInvalidConfig)
	}
	if c.MaxBatch < 1 {
		return fmt.Errorf("%w: max_batch must be at least 1", ErrInvalidConfig)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative", ErrInvalidConfig)
	}
	return nil
}
