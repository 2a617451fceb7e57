// Package catalog holds the validated movie dataset for the process
// lifetime. Loading happens at most once, on first use; every later render
// pass reuses the same immutable slice.
package catalog

import (
	"sync"

	"github.com/srgblkn/movies/internal/domain"
	"github.com/srgblkn/movies/internal/ingest"
)

type Catalog struct {
	Dir     string
	BaseURL string

	once   sync.Once
	movies []domain.Movie
	err    error
}

func New(dir, baseURL string) *Catalog {
	return &Catalog{Dir: dir, BaseURL: baseURL}
}

// Movies locates and loads the dataset on first call and caches the outcome,
// errors included. Concurrent first callers block until the single load
// finishes. Callers must not mutate the returned slice.
func (c *Catalog) Movies() ([]domain.Movie, error) {
	c.once.Do(func() {
		path, err := ingest.Locate(c.Dir)
		if err != nil {
			c.err = err
			return
		}
		c.movies, c.err = ingest.LoadMovies(path, c.BaseURL)
	})
	return c.movies, c.err
}

// Len reports the dataset size, 0 when loading failed.
func (c *Catalog) Len() int {
	movies, _ := c.Movies()
	return len(movies)
}
