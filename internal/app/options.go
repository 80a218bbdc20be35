package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/circleback/internal/dataset"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	fetcher dataset.Fetcher
	now     func() time.Time
	logger  *slog.Logger
}

// WithFetcher replaces the HTTP fetcher used for the default dataset
func WithFetcher(f dataset.Fetcher) Option {
	return func(cfg *appConfig) {
		cfg.fetcher = f
	}
}

// WithClock sets the clock used for date backfills and day counts
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
