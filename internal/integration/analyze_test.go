package integration_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/pipeline"
	"github.com/couchcryptid/weather-report/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end coverage of the analyzer core: real CSV files on disk, the
// bounded dispatcher, and the rendered report. Only the durations in the
// output vary between runs; everything else is asserted exactly.

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newDispatcher() *pipeline.Dispatcher {
	logger := slog.Default()
	metrics := observability.NewMetricsForTesting()
	return pipeline.New(pipeline.NewCSVProcessor(logger, metrics), logger, metrics, 10)
}

func TestAnalyze_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	valid := writeFixture(t, dir, "valid.csv", "Date,Station,Temperature,Pressure\n"+
		"2024-01-01,STN1,10.0,1000.0\n"+
		"2024-01-01,STN2,20.0,1010.0\n"+
		"bad,row\n")
	empty := writeFixture(t, dir, "empty.csv", "Date,Station,Temperature,Pressure\n")
	missing := filepath.Join(dir, "missing.csv")

	d := newDispatcher()
	results := d.Process(context.Background(), []string{valid, empty, missing})

	require.Len(t, results, 3)

	// The valid file aggregates as expected.
	got := results[valid]
	require.NoError(t, got.Err)
	require.Equal(t, 2, got.Stats.Records)
	assert.InDelta(t, 15.0, *got.Stats.AvgTemperature, 1e-9)
	assert.Equal(t, 10.0, *got.Stats.MinTemperature)
	assert.Equal(t, 20.0, *got.Stats.MaxTemperature)
	assert.InDelta(t, 1005.0, *got.Stats.AvgPressure, 1e-9)
	assert.Equal(t, 2, got.Stats.UniqueStations)
	assert.GreaterOrEqual(t, got.Duration.Seconds(), 0.0)

	// The empty file is a legitimate zero-record summary, no error.
	assert.NoError(t, results[empty].Err)
	assert.Equal(t, domain.FileStats{}, results[empty].Stats)

	// The missing file yields the sentinel: same shape, error recorded.
	assert.Error(t, results[missing].Err)
	assert.Equal(t, domain.FileStats{}, results[missing].Stats)
	assert.Zero(t, results[missing].Duration)

	// The rendered report enumerates every requested file, sorted, with
	// N/A for absent values.
	var sb strings.Builder
	require.NoError(t, report.Write(&sb, results))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "=== Weather Analysis Report ===\n"))
	assert.Contains(t, out, "File: "+valid)
	assert.Contains(t, out, "File: "+empty)
	assert.Contains(t, out, "File: "+missing)
	assert.Contains(t, out, "Avg Temperature: 15.0°C")
	assert.Contains(t, out, "Avg Pressure: 1005.0 hPa")
	assert.Contains(t, out, "Avg Temperature: N/A")
	assert.Less(t, strings.Index(out, "File: "+empty), strings.Index(out, "File: "+missing),
		"report must be sorted by path")
}

func TestAnalyze_RepeatedRunsAreDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "obs.csv", "Date,Station,Temperature,Pressure\n"+
		"2024-02-01,StationA,5.0,995.0\n"+
		"2024-02-02,StationB,7.5,1002.5\n"+
		"2024-02-03,StationA,-2.0,1010.0\n")

	d := newDispatcher()
	first := d.Process(context.Background(), []string{path})[path]
	second := d.Process(context.Background(), []string{path})[path]

	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	assert.Equal(t, first.Stats.Records, second.Stats.Records)
	assert.Equal(t, *first.Stats.AvgTemperature, *second.Stats.AvgTemperature)
	assert.Equal(t, *first.Stats.MinTemperature, *second.Stats.MinTemperature)
	assert.Equal(t, *first.Stats.MaxTemperature, *second.Stats.MaxTemperature)
	assert.Equal(t, *first.Stats.AvgPressure, *second.Stats.AvgPressure)
	assert.Equal(t, first.Stats.UniqueStations, second.Stats.UniqueStations)
}

func TestAnalyze_ManyFilesWithDuplicates(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 24)
	for i := range 12 {
		name := writeFixture(t, dir, fmt.Sprintf("file_%02d.csv", i),
			"Date,Station,Temperature,Pressure\n2024-01-01,STN1,1.0,1000.0\n")
		paths = append(paths, name, name) // schedule each file twice
	}

	d := newDispatcher()
	results := d.Process(context.Background(), paths)

	assert.Len(t, results, 12)
	for _, result := range results {
		assert.NoError(t, result.Err)
		assert.Equal(t, 1, result.Stats.Records)
	}
}
