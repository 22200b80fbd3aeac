package domain

// Accumulator folds observations into a FileStats in one streaming pass.
// The zero value is not usable; create with NewAccumulator. Not safe for
// concurrent use — each worker owns its accumulator exclusively.
type Accumulator struct {
	count    int
	tempSum  float64
	presSum  float64
	tempMin  float64
	tempMax  float64
	stations map[string]struct{}
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{stations: make(map[string]struct{})}
}

// Add folds one observation into the running state. The first observation
// seeds min/max; later ones update them only on a strict comparison, so
// ties preserve the first-seen extremum.
func (a *Accumulator) Add(obs Observation) {
	a.count++
	a.tempSum += obs.Temperature
	a.presSum += obs.Pressure

	if a.count == 1 {
		a.tempMin = obs.Temperature
		a.tempMax = obs.Temperature
	} else {
		if obs.Temperature < a.tempMin {
			a.tempMin = obs.Temperature
		}
		if obs.Temperature > a.tempMax {
			a.tempMax = obs.Temperature
		}
	}

	a.stations[obs.Station] = struct{}{}
}

// Summary finalizes the accumulated state. With no observations it returns
// the zero-record summary: nil aggregates and zero unique stations.
func (a *Accumulator) Summary() FileStats {
	stats := FileStats{
		Records:        a.count,
		UniqueStations: len(a.stations),
	}
	if a.count == 0 {
		return stats
	}

	avgTemp := a.tempSum / float64(a.count)
	avgPres := a.presSum / float64(a.count)
	tempMin := a.tempMin
	tempMax := a.tempMax

	stats.AvgTemperature = &avgTemp
	stats.MinTemperature = &tempMin
	stats.MaxTemperature = &tempMax
	stats.AvgPressure = &avgPres
	return stats
}
