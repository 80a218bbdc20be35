// Package dataset owns the most recently ingested tracker export.
// A Store is created once by the application container and passed to
// whatever serves requests; each successful ingestion replaces the held
// snapshot wholesale.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/circleback/internal/ingest"
	"github.com/thenoetrevino/circleback/internal/models"
)

// SourceDefault names snapshots loaded from the default dataset URL
const SourceDefault = "default"

// Upload is caller-supplied CSV text
type Upload struct {
	Name string
	Text string
}

// Snapshot is one immutable ingestion result
type Snapshot struct {
	ID             string              `json:"id"`
	Source         string              `json:"source"`
	LoadedAt       time.Time           `json:"loaded_at"`
	Records        []models.TaskRecord `json:"records"`
	Skipped        []ingest.SkippedRow `json:"skipped"`
	MissingColumns []string            `json:"missing_columns"`
}

// Len returns the number of ingested records
func (s *Snapshot) Len() int {
	return len(s.Records)
}

// Empty reports whether nothing has been loaded into this snapshot
func (s *Snapshot) Empty() bool {
	return s.ID == ""
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used for date backfills and LoadedAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store holds the current dataset. Reads see a consistent snapshot;
// ingestion is last-write-wins.
type Store struct {
	fetcher    Fetcher
	defaultURL string
	now        func() time.Time

	mu      sync.RWMutex
	current *Snapshot
	lastErr error

	lazyOnce sync.Once
}

// NewStore creates an empty store that loads defaultURL through fetcher
// when no upload is supplied.
func NewStore(fetcher Fetcher, defaultURL string, opts ...Option) *Store {
	s := &Store{
		fetcher:    fetcher,
		defaultURL: defaultURL,
		now:        time.Now,
		current:    &Snapshot{Records: []models.TaskRecord{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ingest parses the upload, or fetches the default dataset when upload is nil,
// and replaces the current snapshot. On error the previous snapshot is kept.
func (s *Store) Ingest(ctx context.Context, upload *Upload) (*Snapshot, error) {
	source, text, err := s.read(ctx, upload)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		slog.Error("dataset ingestion failed", "source", source, "error", err)
		return nil, err
	}

	now := s.now()
	result := ingest.Parse(text, now)

	snap := &Snapshot{
		ID:             uuid.NewString(),
		Source:         source,
		LoadedAt:       now,
		Records:        result.Records,
		Skipped:        result.Skipped,
		MissingColumns: result.MissingColumns,
	}

	s.mu.Lock()
	s.current = snap
	s.lastErr = nil
	s.mu.Unlock()

	slog.Info("dataset ingested",
		"id", snap.ID,
		"source", snap.Source,
		"records", snap.Len(),
		"skipped", len(snap.Skipped))

	return snap, nil
}

// IngestText is shorthand for ingesting caller-supplied text
func (s *Store) IngestText(ctx context.Context, name, text string) (*Snapshot, error) {
	return s.Ingest(ctx, &Upload{Name: name, Text: text})
}

// IngestDefault fetches and ingests the default dataset
func (s *Store) IngestDefault(ctx context.Context) (*Snapshot, error) {
	return s.Ingest(ctx, nil)
}

// Current returns the held snapshot. The first call on a store that has
// never ingested anything loads the default dataset once; if that fails the
// error is logged, kept for LastError, and the empty snapshot is returned.
// The load outlives cancellation of ctx and is bounded by DefaultFetchTimeout.
func (s *Store) Current(ctx context.Context) *Snapshot {
	s.lazyOnce.Do(func() {
		if !s.snapshot().Empty() {
			return
		}
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultFetchTimeout)
		defer cancel()
		if _, err := s.IngestDefault(loadCtx); err != nil {
			slog.Warn("failed to load default dataset", "error", err)
		}
	})
	return s.snapshot()
}

// Peek returns the held snapshot without triggering a default load
func (s *Store) Peek() *Snapshot {
	return s.snapshot()
}

// LastError returns the error from the most recent failed ingestion,
// cleared by the next successful one.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// read resolves the upload into a source label and raw text
func (s *Store) read(ctx context.Context, upload *Upload) (string, string, error) {
	if upload != nil {
		name := upload.Name
		if name == "" {
			name = "upload"
		}
		return name, upload.Text, nil
	}

	if s.defaultURL == "" {
		return SourceDefault, "", ErrNoDefaultURL
	}
	if s.fetcher == nil {
		return SourceDefault, "", fmt.Errorf("%w: no fetcher configured", ErrFetchFailed)
	}

	text, err := s.fetcher.Fetch(ctx, s.defaultURL)
	if err != nil {
		if !errors.Is(err, ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		return SourceDefault, "", err
	}
	return SourceDefault, text, nil
}
