// Package tracker is the business layer over the current dataset:
// classification views, task details and follow-up comments.
package tracker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/circleback/internal/classify"
	"github.com/thenoetrevino/circleback/internal/database"
	"github.com/thenoetrevino/circleback/internal/dataset"
	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/report"
	"github.com/thenoetrevino/circleback/internal/user"
)

// MaxCommentLength is the longest accepted comment, in characters
const MaxCommentLength = 1000

// Defaults for Options zero values
const (
	DefaultTopOwners      = 8
	DefaultStaleAfterDays = 14
)

// Service defines all tracker business operations
type Service interface {
	// Ingestion
	Upload(ctx context.Context, name, text string) (*dataset.Snapshot, error)
	LoadDefault(ctx context.Context) (*dataset.Snapshot, error)
	Snapshot(ctx context.Context) *dataset.Snapshot

	// Read operations
	Dashboard(ctx context.Context) (*Dashboard, error)
	Bucket(ctx context.Context, category, groupBy string) (*BucketView, error)
	Classifications(ctx context.Context) ([]Classification, error)
	TaskDetail(ctx context.Context, key string) (*TaskDetail, error)

	// Comments
	AddComment(ctx context.Context, req AddCommentRequest) (*models.Comment, error)
	ListComments(ctx context.Context, key string) ([]*models.Comment, error)
}

// Options tunes the service. Zero values take the package defaults.
type Options struct {
	TopOwners      int
	StaleAfterDays int
	Now            func() time.Time
}

// AddCommentRequest encapsulates all data needed to comment on a task
type AddCommentRequest struct {
	TaskKey string
	Message string
	Author  string // Optional: empty means the current user
}

// Dashboard is the aggregate view of the current dataset
type Dashboard struct {
	SnapshotID     string              `json:"snapshot_id"`
	Source         string              `json:"source"`
	LoadedAt       time.Time           `json:"loaded_at"`
	Summary        report.Summary      `json:"summary"`
	Owners         []report.OwnerCount `json:"owners"`
	TopOwners      []report.OwnerCount `json:"top_owners"`
	Stale          int                 `json:"stale"`
	Skipped        int                 `json:"skipped"`
	MissingColumns []string            `json:"missing_columns"`
	LastError      string              `json:"last_error,omitempty"`
}

// BucketView lists one category's tasks grouped by owner or project
type BucketView struct {
	Category models.Category `json:"category"`
	Title    string          `json:"title"`
	GroupBy  report.GroupBy  `json:"group_by"`
	Count    int             `json:"count"`
	Groups   []report.Group  `json:"groups"`

	// CommentCounts maps task keys in this bucket to their comment totals.
	// Tasks without comments are absent.
	CommentCounts map[string]int `json:"comment_counts"`
}

// Classification pairs a record with the rule that decided it
type Classification struct {
	Key  string            `json:"key"`
	Task models.TaskRecord `json:"task"`
	classify.Result
}

// service implements Service interface
type service struct {
	store    *dataset.Store
	comments database.CommentRepository
	opts     Options

	mu      sync.Mutex
	cacheID string
	buckets *classify.Buckets
}

// NewService creates a new tracker service
func NewService(store *dataset.Store, comments database.CommentRepository, opts Options) Service {
	if opts.TopOwners <= 0 {
		opts.TopOwners = DefaultTopOwners
	}
	if opts.StaleAfterDays <= 0 {
		opts.StaleAfterDays = DefaultStaleAfterDays
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		store:    store,
		comments: comments,
		opts:     opts,
	}
}

// ============================================================================
// Ingestion
// ============================================================================

func (s *service) Upload(ctx context.Context, name, text string) (*dataset.Snapshot, error) {
	snap, err := s.store.IngestText(ctx, name, text)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest upload: %w", err)
	}
	return snap, nil
}

func (s *service) LoadDefault(ctx context.Context) (*dataset.Snapshot, error) {
	snap, err := s.store.IngestDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load default dataset: %w", err)
	}
	return snap, nil
}

func (s *service) Snapshot(ctx context.Context) *dataset.Snapshot {
	return s.store.Current(ctx)
}

// ============================================================================
// Read operations
// ============================================================================

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	snap, buckets := s.view(ctx)
	now := s.opts.Now()

	owners := report.OwnerBreakdown(buckets)

	stale := 0
	for _, rec := range snap.Records {
		if rec.IsStale(now, s.opts.StaleAfterDays) {
			stale++
		}
	}

	dash := &Dashboard{
		SnapshotID:     snap.ID,
		Source:         snap.Source,
		LoadedAt:       snap.LoadedAt,
		Summary:        report.Summarize(buckets),
		Owners:         owners,
		TopOwners:      report.TopOwners(owners, s.opts.TopOwners),
		Stale:          stale,
		Skipped:        len(snap.Skipped),
		MissingColumns: snap.MissingColumns,
	}
	if err := s.store.LastError(); err != nil {
		dash.LastError = err.Error()
	}
	return dash, nil
}

func (s *service) Bucket(ctx context.Context, category, groupBy string) (*BucketView, error) {
	c, err := models.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, category)
	}
	by, err := report.ParseGroupBy(groupBy)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, groupBy)
	}

	_, buckets := s.view(ctx)
	tasks := buckets.Tasks(c)

	counts, err := s.comments.GetCommentCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	bucketCounts := make(map[string]int)
	for _, rec := range tasks {
		if n := counts[rec.Key()]; n > 0 {
			bucketCounts[rec.Key()] = n
		}
	}

	return &BucketView{
		Category:      c,
		Title:         c.Title(),
		GroupBy:       by,
		Count:         len(tasks),
		Groups:        report.GroupTasks(tasks, by),
		CommentCounts: bucketCounts,
	}, nil
}

func (s *service) Classifications(ctx context.Context) ([]Classification, error) {
	snap, buckets := s.view(ctx)

	out := make([]Classification, 0, len(snap.Records))
	for i, rec := range snap.Records {
		out = append(out, Classification{
			Key:    rec.Key(),
			Task:   rec,
			Result: buckets.Results[i],
		})
	}
	return out, nil
}

func (s *service) TaskDetail(ctx context.Context, key string) (*TaskDetail, error) {
	rec, category, matched, err := s.findTask(ctx, key)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.GetCommentsByTask(ctx, rec.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	return buildDetail(rec, category, matched, comments, s.opts.Now(), s.opts.StaleAfterDays), nil
}

// ============================================================================
// Comments
// ============================================================================

func (s *service) AddComment(ctx context.Context, req AddCommentRequest) (*models.Comment, error) {
	message, err := validateMessage(req.Message)
	if err != nil {
		return nil, err
	}

	rec, category, matched, err := s.findTask(ctx, req.TaskKey)
	if err != nil {
		return nil, err
	}
	if matched && category == models.CategoryCompleted {
		return nil, ErrCommentOnCompleted
	}

	comment, err := s.comments.CreateComment(ctx, rec.Key(), message, user.Author(req.Author))
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment, nil
}

func (s *service) ListComments(ctx context.Context, key string) ([]*models.Comment, error) {
	rec, _, _, err := s.findTask(ctx, key)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.GetCommentsByTask(ctx, rec.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// ============================================================================
// Helpers
// ============================================================================

// view returns the current snapshot and its partition, reusing the
// partition while the snapshot is unchanged.
func (s *service) view(ctx context.Context) (*dataset.Snapshot, *classify.Buckets) {
	snap := s.store.Current(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets == nil || s.cacheID != snap.ID {
		s.buckets = classify.Partition(snap.Records)
		s.cacheID = snap.ID
	}
	return snap, s.buckets
}

// findTask looks a key up in the current dataset. The first record with the
// key wins. matched is false for records no rule could place.
func (s *service) findTask(ctx context.Context, key string) (models.TaskRecord, models.Category, bool, error) {
	if strings.TrimSpace(key) == "" {
		return models.TaskRecord{}, "", false, ErrEmptyTaskKey
	}

	snap, buckets := s.view(ctx)
	for _, rec := range snap.Records {
		if rec.Key() != key {
			continue
		}
		category, matched := buckets.CategoryOf(key)
		return rec, category, matched, nil
	}
	return models.TaskRecord{}, "", false, fmt.Errorf("%w: %q", ErrTaskNotFound, key)
}

func validateMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyCommentMessage
	}
	if utf8.RuneCountInString(message) > MaxCommentLength {
		return "", ErrCommentMessageTooLong
	}
	return message, nil
}
