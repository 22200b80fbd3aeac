package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/weather-report/internal/adapter/csvfile"
	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/couchcryptid/weather-report/internal/observability"
)

// FileProcessor computes the statistics summary for one file.
type FileProcessor interface {
	Process(ctx context.Context, path string) (domain.FileStats, error)
}

// CSVProcessor implements FileProcessor by streaming a CSV file through the
// domain accumulator. Constant memory in the record count: one row is held
// at a time, auxiliary state grows only with distinct stations.
type CSVProcessor struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewCSVProcessor creates a CSVProcessor with the given observability.
func NewCSVProcessor(logger *slog.Logger, metrics *observability.Metrics) *CSVProcessor {
	return &CSVProcessor{logger: logger, metrics: metrics}
}

// Process parses the file at path and aggregates it in a single pass.
// Open and read failures are returned to the caller; malformed rows are
// dropped silently, surfaced only as a debug log and a counter.
func (p *CSVProcessor) Process(_ context.Context, path string) (domain.FileStats, error) {
	reader, err := csvfile.Open(path)
	if err != nil {
		return domain.FileStats{}, err
	}
	defer reader.Close()

	acc := domain.NewAccumulator()
	for reader.Scan() {
		acc.Add(reader.Observation())
	}
	if err := reader.Err(); err != nil {
		return domain.FileStats{}, err
	}

	if skipped := reader.Skipped(); skipped > 0 {
		p.logger.Debug("dropped malformed rows", "path", path, "rows", skipped)
		p.metrics.RowsSkipped.Add(float64(skipped))
	}

	return acc.Summary(), nil
}
