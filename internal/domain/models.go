package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Movie is the clean record shape every layer above ingest works with.
// ImageURL and PageURL are either absolute (scheme://...) or empty.
type Movie struct {
	Title       string `json:"movie_title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	PageURL     string `json:"page_url"`
}

// ErrNoDataset means no candidate CSV exists in the search directory.
var ErrNoDataset = errors.New("no dataset file found")

// SchemaError reports required CSV columns absent from the header.
type SchemaError struct {
	Missing []string // sorted
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset missing required columns: %s (expected page_url, image_url, movie_title, description)",
		strings.Join(e.Missing, ", "))
}
