// Package csvfile reads weather observation CSV files as a lazy stream of
// validated records. It is the extract adapter in front of the domain
// aggregation: I/O and CSV framing live here, row validation lives in the
// domain package.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// Reader streams validated observations from one CSV file. Use it like
// bufio.Scanner: call Scan until it returns false, then check Err. A
// Reader is single-use; reopen the file to iterate again.
type Reader struct {
	file    *os.File
	csv     *csv.Reader
	current domain.Observation
	err     error
	skipped int
	started bool
	done    bool
}

// Open opens the CSV file at path for streaming. A missing or unreadable
// file is the caller's error, unlike malformed rows which are skipped
// silently during scanning.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // row width is validated per row, not globally
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	return &Reader{file: f, csv: cr}, nil
}

// Scan advances to the next valid observation. The first call discards the
// header row unconditionally; a file with no rows at all yields an empty
// sequence. Returns false at end of file or on a read error, which is then
// available via Err.
func (r *Reader) Scan() bool {
	if r.done {
		return false
	}

	if !r.started {
		r.started = true
		if _, err := r.csv.Read(); err != nil {
			r.stop(err)
			return false
		}
	}

	for {
		row, err := r.csv.Read()
		if err != nil {
			r.stop(err)
			return false
		}

		obs, ok := domain.ParseObservation(row)
		if !ok {
			r.skipped++
			continue
		}

		r.current = obs
		return true
	}
}

// Observation returns the record produced by the last successful Scan.
func (r *Reader) Observation() domain.Observation {
	return r.current
}

// Err returns the first read error other than end of file.
func (r *Reader) Err() error {
	return r.err
}

// Skipped reports how many malformed rows were dropped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Close releases the underlying file. Safe to call after scanning ends.
func (r *Reader) Close() error {
	return r.file.Close()
}

func (r *Reader) stop(err error) {
	r.done = true
	if !errors.Is(err, io.EOF) {
		r.err = fmt.Errorf("read csv file: %w", err)
	}
}
