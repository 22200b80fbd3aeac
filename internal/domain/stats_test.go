package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(station string, temp, pres float64) Observation {
	return Observation{Date: "2024-01-01", Station: station, Temperature: temp, Pressure: pres}
}

func summarize(observations ...Observation) FileStats {
	acc := NewAccumulator()
	for _, o := range observations {
		acc.Add(o)
	}
	return acc.Summary()
}

func TestAccumulator_Empty(t *testing.T) {
	got := summarize()

	want := FileStats{Records: 0, UniqueStations: 0}
	assert.Empty(t, cmp.Diff(want, got))
	assert.Nil(t, got.AvgTemperature)
	assert.Nil(t, got.MinTemperature)
	assert.Nil(t, got.MaxTemperature)
	assert.Nil(t, got.AvgPressure)
}

func TestAccumulator_KnownValues(t *testing.T) {
	got := summarize(
		obs("STN1", 10.0, 1000.0),
		obs("STN2", 20.0, 1010.0),
	)

	require.Equal(t, 2, got.Records)
	require.NotNil(t, got.AvgTemperature)
	assert.InDelta(t, 15.0, *got.AvgTemperature, 1e-9)
	assert.Equal(t, 10.0, *got.MinTemperature)
	assert.Equal(t, 20.0, *got.MaxTemperature)
	assert.InDelta(t, 1005.0, *got.AvgPressure, 1e-9)
	assert.Equal(t, 2, got.UniqueStations)
}

func TestAccumulator_SingleRecord(t *testing.T) {
	got := summarize(obs("STN1", -3.5, 990.0))

	require.Equal(t, 1, got.Records)
	assert.Equal(t, -3.5, *got.AvgTemperature)
	assert.Equal(t, -3.5, *got.MinTemperature)
	assert.Equal(t, -3.5, *got.MaxTemperature)
	assert.Equal(t, 990.0, *got.AvgPressure)
	assert.Equal(t, 1, got.UniqueStations)
}

func TestAccumulator_UniqueStations(t *testing.T) {
	got := summarize(
		obs("STN1", 1, 1000),
		obs("STN1", 2, 1000),
		obs("STN2", 3, 1000),
		obs("stn1", 4, 1000), // case-sensitive: distinct from STN1
	)

	assert.Equal(t, 4, got.Records)
	assert.Equal(t, 3, got.UniqueStations)
}

func TestAccumulator_TiesKeepFirstExtremum(t *testing.T) {
	// All equal temperatures: min and max both come from the seed record
	// and later ties never overwrite them.
	got := summarize(
		obs("STN1", 5.0, 1000),
		obs("STN2", 5.0, 1000),
		obs("STN3", 5.0, 1000),
	)

	assert.Equal(t, 5.0, *got.MinTemperature)
	assert.Equal(t, 5.0, *got.MaxTemperature)
}

func TestAccumulator_OrderIndependent(t *testing.T) {
	forward := summarize(
		obs("STN1", 10, 1000),
		obs("STN2", 20, 1010),
		obs("STN3", -5, 995),
	)
	reversed := summarize(
		obs("STN3", -5, 995),
		obs("STN2", 20, 1010),
		obs("STN1", 10, 1000),
	)

	assert.Equal(t, forward.Records, reversed.Records)
	assert.Equal(t, forward.UniqueStations, reversed.UniqueStations)
	assert.Equal(t, *forward.MinTemperature, *reversed.MinTemperature)
	assert.Equal(t, *forward.MaxTemperature, *reversed.MaxTemperature)
	assert.InDelta(t, *forward.AvgTemperature, *reversed.AvgTemperature, 1e-9)
	assert.InDelta(t, *forward.AvgPressure, *reversed.AvgPressure, 1e-9)
}
