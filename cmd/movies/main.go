package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/srgblkn/movies/internal/catalog"
	"github.com/srgblkn/movies/internal/dashboard"
	"github.com/srgblkn/movies/internal/session"
)

func main() {
	// 1. Setup
	godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	// Relative links in the dataset ("/film/...") resolve against this host.
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "https://ithinker.ru"
	}

	// 2. Wire the render pipeline
	cat := catalog.New(dataDir, baseURL)
	srv := dashboard.NewServer(cat, session.New())

	// 3. Warm the cache so a broken dataset is reported at startup, not on
	// the first page view. The server still starts; every pass will show
	// the same fatal message.
	if movies, err := cat.Movies(); err != nil {
		logger.Error("Dataset load failed", "dir", dataDir, "err", err)
	} else {
		logger.Info("Dataset loaded", "dir", dataDir, "movies", len(movies))
	}

	logger.Info("Starting movie picker", "port", port)
	if err := srv.Start(port); err != nil {
		logger.Error("Server failed", "err", err)
		os.Exit(1)
	}
}
