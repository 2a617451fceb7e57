// Package sampler draws reproducible random subsets of the catalog.
package sampler

import (
	"math/rand"

	"github.com/srgblkn/movies/internal/domain"
)

// Pick selects count movies without replacement, fully determined by seed:
// the same (movies, count, seed) always yields the same records in the same
// order. Counts beyond len(movies) silently cap, so small datasets never
// cause an error. The input slice is not modified.
func Pick(movies []domain.Movie, count int, seed int64) []domain.Movie {
	if count > len(movies) {
		count = len(movies)
	}
	if count <= 0 {
		return nil
	}

	rnd := rand.New(rand.NewSource(seed))
	picked := make([]domain.Movie, 0, count)
	for _, idx := range rnd.Perm(len(movies))[:count] {
		picked = append(picked, movies[idx])
	}
	return picked
}
