package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/srgblkn/movies/internal/domain"
)

// CanonicalName is the dataset file looked for first.
const CanonicalName = "movies.csv"

// Locate picks the dataset file inside dir: the canonical name when present,
// otherwise the lexicographically first *.csv so repeated runs agree on the
// same file.
func Locate(dir string) (string, error) {
	preferred := filepath.Join(dir, CanonicalName)
	if _, err := os.Stat(preferred); err == nil {
		return preferred, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading dataset dir %s: %w", dir, err)
	}

	var candidates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			candidates = append(candidates, e.Name())
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w in %s (expected %s or any *.csv)", domain.ErrNoDataset, dir, CanonicalName)
	}
	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0]), nil
}
