// Package pipeline runs the per-file parse-and-aggregate pipeline across
// many files on a bounded worker pool.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/timing"
)

// Dispatcher fans file processing out across a bounded worker pool and
// collects results keyed by file path.
type Dispatcher struct {
	processor  FileProcessor
	logger     *slog.Logger
	metrics    *observability.Metrics
	maxWorkers int
	processed  atomic.Bool
}

// New creates a Dispatcher. The pool for any single run is bounded at
// min(maxWorkers, number of files); maxWorkers values below 1 are raised
// to 1.
func New(processor FileProcessor, logger *slog.Logger, metrics *observability.Metrics, maxWorkers int) *Dispatcher {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Dispatcher{
		processor:  processor,
		logger:     logger,
		metrics:    metrics,
		maxWorkers: maxWorkers,
	}
}

// CheckReadiness returns nil once the dispatcher has completed at least
// one file.
func (d *Dispatcher) CheckReadiness(_ context.Context) error {
	if !d.processed.Load() {
		return errors.New("dispatcher has not processed any files yet")
	}
	return nil
}

// Process runs the file pipeline for every path concurrently and returns
// the finalized result mapping. Every requested path appears exactly once
// as a key: a file whose processing fails gets a zero-record sentinel
// summary with zero duration and the failure recorded in FileResult.Err,
// and never disturbs sibling files. Duplicate paths are scheduled
// independently; the entry that completes last wins. Process blocks until
// all workers finish.
//
// Cancelling ctx stops new files from being scheduled; paths that never
// ran still receive sentinel entries so the mapping stays complete.
func (d *Dispatcher) Process(ctx context.Context, paths []string) map[string]domain.FileResult {
	results := make(map[string]domain.FileResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	d.metrics.DispatchRuns.Inc()

	workers := min(d.maxWorkers, len(paths))
	d.logger.Info("dispatching files", "files", len(paths), "workers", workers)

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(workers)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			results[path] = d.failure(path, err)
			mu.Unlock()
			continue
		}

		g.Go(func() error {
			result := d.processOne(ctx, path)

			mu.Lock()
			results[path] = result
			mu.Unlock()
			return nil
		})
	}

	g.Wait() //nolint:errcheck // workers never return errors; failures become sentinels

	d.logger.Info("dispatch complete", "files", len(results))
	return results
}

// processOne runs the timed parse-and-aggregate pipeline for a single file.
func (d *Dispatcher) processOne(ctx context.Context, path string) domain.FileResult {
	d.metrics.ActiveWorkers.Inc()
	defer d.metrics.ActiveWorkers.Dec()

	stats, elapsed, err := timing.Measure(func() (domain.FileStats, error) {
		return d.processor.Process(ctx, path)
	})
	if err != nil {
		return d.failure(path, err)
	}

	d.processed.Store(true)
	d.metrics.FilesProcessed.Inc()
	d.metrics.RecordsParsed.Add(float64(stats.Records))
	d.metrics.FileDuration.Observe(elapsed.Seconds())
	d.logger.Debug("file processed",
		"path", path,
		"records", stats.Records,
		"duration", elapsed,
	)

	return domain.FileResult{
		Stats:       stats,
		Duration:    elapsed,
		ProcessedAt: domain.Now(),
	}
}

// failure converts a per-file error into the sentinel result. The summary
// is indistinguishable from a legitimately empty file; Err carries the
// reason for callers that need to tell the two apart.
func (d *Dispatcher) failure(path string, err error) domain.FileResult {
	d.logger.Warn("file processing failed", "path", path, "error", err)
	d.metrics.FileFailures.Inc()
	return domain.FileResult{
		Err:         err,
		ProcessedAt: domain.Now(),
	}
}
