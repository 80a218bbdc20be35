package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/circleback/internal/config"
	"github.com/thenoetrevino/circleback/internal/database"
	"github.com/thenoetrevino/circleback/internal/dataset"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Data layer
	db       *sql.DB
	Store    *dataset.Store
	Comments database.CommentRepository

	// Service layer (business logic)
	TrackerService tracker.Service

	logger *slog.Logger
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.fetcher == nil {
		ac.fetcher = dataset.NewHTTPFetcher(cfg.FetchTimeout)
	}

	db, err := database.InitDB(ctx, cfg.CommentsDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open comment store: %w", err)
	}

	store := dataset.NewStore(ac.fetcher, cfg.DatasetURL, dataset.WithClock(ac.now))
	comments := database.NewCommentRepository(db)

	a := &App{
		Config:   cfg,
		db:       db,
		Store:    store,
		Comments: comments,
		TrackerService: tracker.NewService(store, comments, tracker.Options{
			TopOwners:      cfg.TopOwners,
			StaleAfterDays: cfg.StaleAfterDays,
			Now:            ac.now,
		}),
		logger: ac.logger,
	}

	a.logger.Debug("app initialized",
		"dataset_url", cfg.DatasetURL,
		"comments_dsn", cfg.CommentsDSN)

	return a, nil
}

// Logger returns the logger the app was built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close comment store: %w", err)
	}
	return nil
}
