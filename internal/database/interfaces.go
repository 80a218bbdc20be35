// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/circleback/internal/models"
)

// CommentRepository stores follow-up notes against task keys.
// Validation lives in the tracker service; this layer only persists.
type CommentRepository interface {
	CreateComment(ctx context.Context, taskKey, message, author string) (*models.Comment, error)
	GetCommentsByTask(ctx context.Context, taskKey string) ([]*models.Comment, error)
	GetCommentCounts(ctx context.Context) (map[string]int, error)
}
