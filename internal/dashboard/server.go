package dashboard

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/srgblkn/movies/internal/catalog"
	"github.com/srgblkn/movies/internal/sampler"
	"github.com/srgblkn/movies/internal/session"
	"golang.org/x/time/rate"
)

// Count bounds for the "how many movies" control.
const (
	MinCount     = 1
	MaxCount     = 50
	DefaultCount = 10
)

type Server struct {
	Catalog *catalog.Catalog
	Seed    *session.Seed

	limiter *rate.Limiter
}

func NewServer(cat *catalog.Catalog, seed *session.Seed) *Server {
	// Refresh is a user-facing button; one click per 300ms is plenty and
	// keeps a stuck key from burning through seeds.
	return &Server{
		Catalog: cat,
		Seed:    seed,
		limiter: rate.NewLimiter(rate.Every(300*time.Millisecond), 1),
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/refresh", s.handleRefresh)
	mux.HandleFunc("/stats", s.handleStats)
	return mux
}

func (s *Server) Start(port string) error {
	return http.ListenAndServe(":"+port, s.Routes())
}

// handleIndex runs one full render pass: cached load, one seed read, one
// sample, one page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	movies, err := s.Catalog.Movies()
	if err != nil {
		slog.Error("Dataset load failed", "err", err)
		renderError(w, err.Error())
		return
	}
	if len(movies) == 0 {
		renderWarning(w, "The dataset has no rows with a non-empty movie_title and description.")
		return
	}

	count := parseCount(r.URL.Query().Get("count"))
	seed := s.Seed.Current()
	picked := sampler.Pick(movies, count, seed)

	slog.Info("Render pass", "total", len(movies), "count", len(picked), "seed", seed)
	renderCards(w, pageData{
		Movies: picked,
		Total:  len(movies),
		Count:  count,
		Min:    MinCount,
		Max:    MaxCount,
	})
}

// handleRefresh advances the seed so the next render pass shows a different
// sample, then sends the browser back to the card page.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "refresh requires POST", http.StatusMethodNotAllowed)
		return
	}
	if !s.limiter.Allow() {
		http.Error(w, "too many refreshes, slow down", http.StatusTooManyRequests)
		return
	}

	seed := s.Seed.Advance()
	slog.Info("Seed advanced", "seed", seed)

	count := parseCount(r.FormValue("count"))
	http.Redirect(w, r, "/?count="+url.QueryEscape(strconv.Itoa(count)), http.StatusSeeOther)
}

// handleStats charts coverage over the full dataset, not the current sample.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	movies, err := s.Catalog.Movies()
	if err != nil {
		slog.Error("Dataset load failed", "err", err)
		renderError(w, err.Error())
		return
	}

	// 1. Poster coverage
	withPoster, withLink := 0, 0
	for _, m := range movies {
		if m.ImageURL != "" {
			withPoster++
		}
		if m.PageURL != "" {
			withLink++
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Poster Coverage"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)
	pie.AddSeries("Movies", []opts.PieData{
		{Name: "With poster", Value: withPoster},
		{Name: "Without poster", Value: len(movies) - withPoster},
	})

	// 2. Description length spread
	buckets := map[string]int{}
	for _, m := range movies {
		buckets[lengthBucket(len([]rune(m.Description)))]++
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Description Length"}))

	var barX []string
	var barY []opts.BarData
	for _, b := range []string{"short (<100)", "medium (100-299)", "long (300+)"} {
		barX = append(barX, b)
		barY = append(barY, opts.BarData{Value: buckets[b]})
	}
	bar.SetXAxis(barX).AddSeries("Movies", barY)

	slog.Info("Stats pass", "total", len(movies), "with_poster", withPoster, "with_link", withLink)
	pie.Render(w)
	bar.Render(w)
}

func lengthBucket(n int) string {
	switch {
	case n < 100:
		return "short (<100)"
	case n < 300:
		return "medium (100-299)"
	default:
		return "long (300+)"
	}
}

// parseCount clamps the requested card count into [MinCount, MaxCount];
// anything unparseable falls back to the default.
func parseCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultCount
	}
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}
