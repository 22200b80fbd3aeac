// Package domain models weather observation data and its per-file statistics.
//
// # Data Source
//
// Observations arrive as comma-separated UTF-8 text files. The first row is
// a header and is always discarded, whatever its content. Every subsequent
// row carries at least four positional fields:
//
//	date, station, temperature, pressure
//
// Trailing extra fields are ignored. The date and station fields are free
// text, trimmed of surrounding whitespace but otherwise taken as-is (no
// calendar validation, no case normalization). Temperature (°C) and
// pressure (hPa) must parse as finite floating-point numbers after
// trimming; a row that fails either parse, or has fewer than four fields,
// is silently dropped. Malformed rows are a property of the data, not an
// error condition.
//
// # Aggregation
//
// [Accumulator] folds a stream of observations into a [FileStats] in a
// single forward pass. Auxiliary memory grows with the number of distinct
// stations only, never with the record count, so arbitrarily large files
// aggregate in constant space. Min/max temperature use strict comparisons
// seeded by the first record: ties keep the first-seen extremum, which
// makes the summary deterministic for any ordering of equal values.
//
// A file with zero valid observations is a legitimate state, not a
// failure: the summary reports zero records and absent (nil) aggregate
// values.
//
// # Time
//
// Result timestamps come from a package-level clock so tests can freeze
// time via [SetClock]. Production code uses the real clock.
package domain
