// Command analyze computes per-file statistics for weather observation CSV
// files and prints a sorted report.
//
// File paths come from the command line; with no arguments the analyzer
// falls back to DATA_DIR, then to the nearest data directory found by
// climbing from the working directory.
//
// Usage:
//
//	analyze [file.csv ...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/couchcryptid/weather-report/internal/adapter/http"
	"github.com/couchcryptid/weather-report/internal/config"
	"github.com/couchcryptid/weather-report/internal/discover"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/pipeline"
	"github.com/couchcryptid/weather-report/internal/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("analyze failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	godotenv.Load() //nolint:errcheck // .env is optional

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	paths, err := resolvePaths(flag.Args(), cfg)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no CSV files provided or found; pass file paths as arguments")
	}

	processor := pipeline.NewCSVProcessor(logger, metrics)
	dispatcher := pipeline.New(processor, logger, metrics, cfg.MaxWorkers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The metrics endpoint is opt-in; most runs finish in well under a
	// second and have no use for it.
	var srv *httpadapter.Server
	if cfg.MetricsAddr != "" {
		srv = httpadapter.NewServer(cfg.MetricsAddr, dispatcher, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	results := dispatcher.Process(ctx, paths)

	if err := report.Write(os.Stdout, results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
	}

	return nil
}

// resolvePaths picks the input files: explicit arguments win, then the
// configured data directory, then directory-climbing discovery.
func resolvePaths(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if cfg.DataDir != "" {
		files, err := filepath.Glob(filepath.Join(cfg.DataDir, "*.csv"))
		if err != nil {
			return nil, fmt.Errorf("scan DATA_DIR: %w", err)
		}
		sort.Strings(files)
		return files, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return discover.CSVFiles(cwd), nil
}
