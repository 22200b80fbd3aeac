// Package config loads service settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultMaxWorkers      = 10
	maxWorkersCeiling      = 100
	defaultShutdownTimeout = 5 * time.Second
)

// Config holds all analyzer settings, populated from environment variables.
type Config struct {
	LogLevel  string
	LogFormat string

	// MaxWorkers caps the worker pool; the effective pool size for a run
	// is min(MaxWorkers, number of files).
	MaxWorkers int

	// DataDir overrides default-path discovery when set: all *.csv files
	// directly under it are analyzed.
	DataDir string

	// MetricsAddr enables the metrics/health HTTP endpoint when non-empty.
	MetricsAddr string

	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	maxWorkers, err := parseMaxWorkers()
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		MaxWorkers:      maxWorkers,
		DataDir:         os.Getenv("DATA_DIR"),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func parseMaxWorkers() (int, error) {
	s := os.Getenv("MAX_WORKERS")
	if s == "" {
		return defaultMaxWorkers, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxWorkersCeiling {
		return 0, fmt.Errorf("MAX_WORKERS must be an integer between 1 and %d, got %q", maxWorkersCeiling, s)
	}
	return n, nil
}

func parseShutdownTimeout() (time.Duration, error) {
	s := os.Getenv("SHUTDOWN_TIMEOUT")
	if s == "" {
		return defaultShutdownTimeout, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("SHUTDOWN_TIMEOUT must be a positive duration, got %q", s)
	}
	return d, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
