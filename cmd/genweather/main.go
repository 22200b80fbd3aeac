// Command genweather generates random weather observation CSV fixtures in
// the format the analyzer consumes. It mirrors the historical report
// generator: five fixed stations, dates between 2020 and 2025,
// temperatures from -10.0 to 40.0 °C and pressures from 980.0 to
// 1050.0 hPa, both in tenths.
//
// Usage:
//
//	go run ./cmd/genweather -out data -files 3 -seed 42
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

var stations = []string{"StationA", "StationB", "StationC", "StationD", "StationE"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "data", "output directory for generated CSV files")
	files := flag.Int("files", 3, "number of files to generate")
	minRows := flag.Int("min-rows", 10, "minimum observation rows per file")
	maxRows := flag.Int("max-rows", 20, "maximum observation rows per file")
	seed := flag.Uint64("seed", 0, "PRNG seed; 0 picks a random one")
	flag.Parse()

	if *files < 1 {
		return fmt.Errorf("-files must be at least 1, got %d", *files)
	}
	if *minRows < 0 || *maxRows < *minRows {
		return fmt.Errorf("invalid row range [%d, %d]", *minRows, *maxRows)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for i := 1; i <= *files; i++ {
		path := filepath.Join(*outDir, fmt.Sprintf("weather_%02d.csv", i))
		rows := *minRows
		if *maxRows > *minRows {
			rows += rng.IntN(*maxRows - *minRows + 1)
		}
		if err := writeFile(path, rows, rng); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Printf("wrote %s: %d rows", path, rows)
	}

	return nil
}

func writeFile(path string, rows int, rng *rand.Rand) error {
	var sb strings.Builder
	sb.WriteString("Date,Station,Temperature,Pressure\n")
	for range rows {
		sb.WriteString(randomRow(rng))
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// randomRow produces one observation row. Temperatures and pressures are
// drawn in tenths so they always print with one decimal place.
func randomRow(rng *rand.Rand) string {
	temperature := float64(rng.IntN(501)-100) / 10.0 // -10.0 .. 40.0
	pressure := float64(rng.IntN(701)+9800) / 10.0   // 980.0 .. 1050.0
	return fmt.Sprintf("%s,%s,%.1f,%.1f",
		randomDate(rng),
		stations[rng.IntN(len(stations))],
		temperature,
		pressure,
	)
}

// randomDate picks a day between 2020 and 2025 with month-correct day
// ranges. February is fixed at 28 days; leap years are ignored on purpose.
func randomDate(rng *rand.Rand) string {
	year := 2020 + rng.IntN(6)
	month := 1 + rng.IntN(12)

	var maxDay int
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		maxDay = 31
	case 4, 6, 9, 11:
		maxDay = 30
	default:
		maxDay = 28
	}
	day := 1 + rng.IntN(maxDay)

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
