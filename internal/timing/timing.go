// Package timing measures wall-clock duration of synchronous computations.
package timing

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// The real clock carries Go's monotonic reading, so elapsed time is immune
// to system clock adjustments.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for measurements. Pass nil to reset to
// real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Measure runs fn to completion and returns its result together with the
// elapsed wall-clock time. Errors from fn propagate unchanged; no duration
// is reported for a failed computation.
func Measure[T any](fn func() (T, error)) (T, time.Duration, error) {
	start := clock.Now()
	result, err := fn()
	if err != nil {
		return result, 0, err
	}
	return result, clock.Since(start), nil
}
