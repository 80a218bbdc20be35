package cli

import (
	"errors"
	"io/fs"

	"github.com/thenoetrevino/circleback/internal/dataset"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: comment store errors, dataset fetch failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown flags, missing positional arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown task keys or a --file path that does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or unreadable input data.
	// Use for: a --file that cannot be read.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unknown categories or groupings, empty or oversized comments,
	// comments on completed tasks.
	ExitValidation = 5
)

// ErrInputRead marks failures reading the --file input
var ErrInputRead = errors.New("failed to read input")

// ExitError carries the process exit code for an error that was already
// reported to the user
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error to the exit code the process should return
func ExitCodeFor(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case tracker.IsValidation(err):
		return ExitValidation
	case errors.Is(err, tracker.ErrTaskNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, ErrInputRead):
		return ExitDataErr
	default:
		return ExitGeneral
	}
}

// errorCode is the machine readable code reported in JSON errors
func errorCode(err error) string {
	switch {
	case tracker.IsValidation(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, tracker.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, fs.ErrNotExist):
		return "FILE_NOT_FOUND"
	case errors.Is(err, ErrInputRead):
		return "INPUT_ERROR"
	case errors.Is(err, dataset.ErrFetchFailed), errors.Is(err, dataset.ErrNoDefaultURL):
		return "FETCH_ERROR"
	default:
		return "ERROR"
	}
}
