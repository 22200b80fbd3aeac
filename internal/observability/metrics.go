package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// file-processing pipeline.
type Metrics struct {
	FilesProcessed prometheus.Counter
	FileFailures   prometheus.Counter
	RecordsParsed  prometheus.Counter
	RowsSkipped    prometheus.Counter

	FileDuration  prometheus.Histogram
	ActiveWorkers prometheus.Gauge
	DispatchRuns  prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "files_processed_total",
			Help:      "Total files whose statistics were computed successfully.",
		}),
		FileFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "file_failures_total",
			Help:      "Total files that failed and received a sentinel summary.",
		}),
		RecordsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "records_parsed_total",
			Help:      "Total valid observation rows parsed across all files.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "rows_skipped_total",
			Help:      "Total malformed rows dropped during parsing.",
		}),
		FileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_report",
			Name:      "file_processing_duration_seconds",
			Help:      "Duration of one file's parse-and-aggregate pipeline.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ActiveWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_report",
			Name:      "active_workers",
			Help:      "Number of worker goroutines currently processing a file.",
		}),
		DispatchRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "dispatch_runs_total",
			Help:      "Total dispatch invocations.",
		}),
	}

	prometheus.MustRegister(
		m.FilesProcessed,
		m.FileFailures,
		m.RecordsParsed,
		m.RowsSkipped,
		m.FileDuration,
		m.ActiveWorkers,
		m.DispatchRuns,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "files_processed_total"}),
		FileFailures:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "file_failures_total"}),
		RecordsParsed:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "records_parsed_total"}),
		RowsSkipped:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "rows_skipped_total"}),
		FileDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_report", Name: "file_processing_duration_seconds"}),
		ActiveWorkers:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_report", Name: "active_workers"}),
		DispatchRuns:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "dispatch_runs_total"}),
	}
}
