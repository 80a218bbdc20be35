package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/circleback/internal/models"
)

// commentRepository handles pure data access for comments
type commentRepository struct {
	db  *sql.DB
	now func() time.Time
}

// Compile-time verification that commentRepository implements CommentRepository
var _ CommentRepository = (*commentRepository)(nil)

// NewCommentRepository creates a comment repository on db
func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db, now: time.Now}
}

// ============================================================================
// CRUD OPERATIONS
// ============================================================================

// CreateComment inserts a comment and returns it with its assigned ID
func (r *commentRepository) CreateComment(ctx context.Context, taskKey, message, author string) (*models.Comment, error) {
	createdAt := r.now().UTC()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (task_key, message, author, created_at)
		 VALUES (?, ?, ?, ?)`,
		taskKey, message, author, createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment id: %w", err)
	}

	return &models.Comment{
		ID:        int(id),
		TaskKey:   taskKey,
		Message:   message,
		Author:    author,
		CreatedAt: createdAt,
	}, nil
}

// GetCommentsByTask returns a task's comments oldest first
func (r *commentRepository) GetCommentsByTask(ctx context.Context, taskKey string) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_key, message, author, created_at
		 FROM comments
		 WHERE task_key = ?
		 ORDER BY id`,
		taskKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for %q: %w", taskKey, err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var (
			c         models.Comment
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.TaskKey, &c.Message, &c.Author, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.CreatedAt = parseTimestamp(createdAt)
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// GetCommentCounts returns the number of comments per task key
func (r *commentRepository) GetCommentCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_key, COUNT(*) FROM comments GROUP BY task_key`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan comment count: %w", err)
		}
		counts[key] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ============================================================================
// HELPERS
// ============================================================================

func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
