// Package discover locates default weather CSV inputs when the caller
// supplies none. It is a collaborator of the CLI shell, deliberately kept
// out of the core pipeline API.
package discover

import (
	"path/filepath"
	"sort"
)

// CSVFiles finds default input files relative to startDir. It first tries
// the sibling data directory (startDir/../data), then climbs from startDir
// toward the filesystem root looking for a data directory containing CSV
// files. Returns the sorted matches, or an empty slice when none exist.
func CSVFiles(startDir string) []string {
	if files := globCSV(filepath.Join(startDir, "..", "data")); len(files) > 0 {
		return files
	}

	dir := startDir
	for {
		if files := globCSV(filepath.Join(dir, "data")); len(files) > 0 {
			return files
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

func globCSV(dir string) []string {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil || len(files) == 0 {
		return nil
	}
	sort.Strings(files)
	return files
}
