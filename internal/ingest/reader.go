package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/srgblkn/movies/internal/domain"
)

var requiredColumns = []string{"description", "image_url", "movie_title", "page_url"}

// LoadMovies reads the dataset at path and returns the validated records.
// Column order in the file is irrelevant and extra columns are ignored; a
// missing required column is fatal (*domain.SchemaError). Rows whose title or
// description trims to empty are dropped, URL fields are absolutized against
// baseURL, and malformed rows are skipped (fail-soft).
func LoadMovies(path, baseURL string) ([]domain.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	// Wrap in BOM stripper
	r := csv.NewReader(stripBOM(f))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &domain.SchemaError{Missing: missing}
	}

	movies := []domain.Movie{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		m := domain.Movie{
			Title:       strings.TrimSpace(field(record, cols["movie_title"])),
			Description: strings.TrimSpace(field(record, cols["description"])),
			ImageURL:    AbsURL(field(record, cols["image_url"]), baseURL),
			PageURL:     AbsURL(field(record, cols["page_url"]), baseURL),
		}
		if m.Title == "" || m.Description == "" {
			continue
		}
		movies = append(movies, m)
	}
	return movies, nil
}

// field tolerates short rows produced by ragged CSVs.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rn, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rn != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
