package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srgblkn/movies/internal/domain"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestLocatePrefersCanonicalName(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "aaa.csv"))
	touch(t, filepath.Join(dir, "movies.csv"))

	path, err := Locate(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "movies.csv"), path)
}

func TestLocateFallsBackToFirstSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "zz.csv"))
	touch(t, filepath.Join(dir, "bb.csv"))
	touch(t, filepath.Join(dir, "notes.txt"))

	path, err := Locate(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "bb.csv"), path)
}

func TestLocateIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.csv"), 0755))
	touch(t, filepath.Join(dir, "data.csv"))

	path, err := Locate(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "data.csv"), path)
}

func TestLocateNoCandidates(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))

	_, err := Locate(dir)
	require.ErrorIs(t, err, domain.ErrNoDataset)
}
