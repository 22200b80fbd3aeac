// Package report renders the per-file statistics mapping as stable,
// alphabetically sorted text.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// Write renders the result mapping to w, one block per file in ascending
// path order. Absent aggregate values print as "N/A", so a failed file
// looks the same as a legitimately empty one.
func Write(w io.Writer, results map[string]domain.FileResult) error {
	paths := make([]string, 0, len(results))
	for path := range results {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if _, err := fmt.Fprint(w, "=== Weather Analysis Report ===\n\n--- Statistics by File ---\n"); err != nil {
		return err
	}

	for _, path := range paths {
		result := results[path]
		stats := result.Stats

		_, err := fmt.Fprintf(w,
			"File: %s\nProcessed in %.2f seconds\n  Records: %d\n  Avg Temperature: %s\n  Min Temperature: %s\n  Max Temperature: %s\n  Avg Pressure: %s\n  Unique Stations: %d\n\n",
			path,
			result.Duration.Seconds(),
			stats.Records,
			formatValue(stats.AvgTemperature, "°C"),
			formatValue(stats.MinTemperature, "°C"),
			formatValue(stats.MaxTemperature, "°C"),
			formatValue(stats.AvgPressure, " hPa"),
			stats.UniqueStations,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// formatValue renders an optional measurement to one decimal place with
// its unit suffix, or "N/A" when absent.
func formatValue(v *float64, suffix string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%s", *v, suffix)
}
