package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Observation is one parsed weather measurement. Observations are produced
// one at a time by the CSV reader and consumed immediately; they are never
// retained in bulk.
type Observation struct {
	Date        string
	Station     string
	Temperature float64 // °C
	Pressure    float64 // hPa
}

// FileStats is the aggregated summary for one file, immutable once built
// by [Accumulator.Summary]. The pointer fields are nil when Records is
// zero — absent, not zero-valued.
type FileStats struct {
	Records        int      `json:"records"`
	AvgTemperature *float64 `json:"avg_temperature,omitempty"`
	MinTemperature *float64 `json:"min_temperature,omitempty"`
	MaxTemperature *float64 `json:"max_temperature,omitempty"`
	AvgPressure    *float64 `json:"avg_pressure,omitempty"`
	UniqueStations int      `json:"unique_stations"`
}

// FileResult pairs a file's summary with how long it took to compute.
// Err records why processing failed, if it did; the stats are then the
// zero-record sentinel and Duration is zero. Rendering ignores Err so a
// failed file is reported with the same shape as an empty one.
type FileResult struct {
	Stats       FileStats     `json:"stats"`
	Duration    time.Duration `json:"duration"`
	Err         error         `json:"-"`
	ProcessedAt time.Time     `json:"processed_at"`
}

// ParseObservation validates one CSV row. It requires at least four
// fields, interprets the first four positionally as date, station,
// temperature, pressure, and ignores the rest. Returns false when the row
// is too short or either numeric field does not parse to a finite value.
func ParseObservation(row []string) (Observation, bool) {
	if len(row) < 4 {
		return Observation{}, false
	}

	temp, ok := parseFinite(row[2])
	if !ok {
		return Observation{}, false
	}
	pres, ok := parseFinite(row[3])
	if !ok {
		return Observation{}, false
	}

	return Observation{
		Date:        strings.TrimSpace(row[0]),
		Station:     strings.TrimSpace(row[1]),
		Temperature: temp,
		Pressure:    pres,
	}, true
}

// parseFinite parses a trimmed string as a finite float64. Rejects NaN and
// infinities, which strconv would otherwise accept.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
