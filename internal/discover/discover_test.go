package discover_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/weather-report/internal/discover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("Date,Station,Temperature,Pressure\n"), 0o644))
}

func TestCSVFiles_SiblingDataDir(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "data", "b.csv"))
	touch(t, filepath.Join(root, "data", "a.csv"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "analyzer"), 0o755))

	files := discover.CSVFiles(filepath.Join(root, "analyzer"))

	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", filepath.Base(files[0]))
	assert.Equal(t, "b.csv", filepath.Base(files[1]))
}

func TestCSVFiles_ClimbsToAncestorDataDir(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "data", "obs.csv"))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	files := discover.CSVFiles(nested)

	require.Len(t, files, 1)
	assert.Equal(t, "obs.csv", filepath.Base(files[0]))
}

func TestCSVFiles_NoneFound(t *testing.T) {
	files := discover.CSVFiles(t.TempDir())

	assert.Empty(t, files)
}

func TestCSVFiles_IgnoresNonCSV(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "data", "notes.txt"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "app"), 0o755))

	files := discover.CSVFiles(filepath.Join(root, "app"))

	assert.Empty(t, files)
}
