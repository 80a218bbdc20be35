package tracker

import (
	"errors"

	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/report"
)

// Tracker-related errors
var (
	// Lookup errors
	ErrUnknownCategory = models.ErrUnknownCategory
	ErrInvalidGroupBy  = report.ErrInvalidGroupBy
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTaskKey    = errors.New("task key cannot be empty")

	// Comment validation errors
	ErrEmptyCommentMessage   = errors.New("comment message cannot be empty")
	ErrCommentMessageTooLong = errors.New("comment message cannot exceed 1000 characters")
	ErrCommentOnCompleted    = errors.New("cannot comment on a completed task")
)

// IsValidation reports whether err is caused by bad caller input
func IsValidation(err error) bool {
	return errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrInvalidGroupBy) ||
		errors.Is(err, ErrEmptyTaskKey) ||
		errors.Is(err, ErrEmptyCommentMessage) ||
		errors.Is(err, ErrCommentMessageTooLong) ||
		errors.Is(err, ErrCommentOnCompleted)
}
