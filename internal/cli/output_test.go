package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/thenoetrevino/circleback/internal/dataset"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
	"github.com/thenoetrevino/circleback/internal/testutil"
)

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Success(map[string]any{"total": 13}); err != nil {
		t.Fatalf("Success failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, out.String())
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["total"].(float64) != 13 {
		t.Errorf("Expected data.total to be 13, got %v", data["total"])
	}

	t.Logf("✓ JSON envelope: %s", strings.TrimSpace(out.String()))
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)

	type point struct{ X, Y int }
	if err := f.Success(point{1, 2}); err != nil {
		t.Fatalf("Success failed: %v", err)
	}

	if got := out.String(); got != "{X:1 Y:2}\n" {
		t.Errorf("Expected %%+v output, got %q", got)
	}
}

// ============================================================================
// Error Tests
// ============================================================================

// TestOutputFormatter_DefaultsToStdout ensures a zero formatter prints to the process stdout
func TestOutputFormatter_DefaultsToStdout(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		if err := formatter.Success(map[string]int{"total": 13}); err != nil {
			t.Errorf("Success failed: %v", err)
		}
	})

	if !strings.Contains(output, `"total":13`) {
		t.Errorf("Expected JSON on stdout, got %q", output)
	}

	t.Logf("✓ Formatter wrote to stdout")
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	if err := f.ErrorWithSuggestion("TASK_NOT_FOUND", "task not found", "try classify"); err != nil {
		t.Fatalf("ErrorWithSuggestion failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "TASK_NOT_FOUND" || errData["suggestion"] != "try classify" {
		t.Errorf("Unexpected error payload: %v", errData)
	}
	if errOut.Len() != 0 {
		t.Errorf("JSON errors go to stdout, got stderr %q", errOut.String())
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	_ = f.ErrorWithSuggestion("X", "boom", "")
	if out.Len() != 0 {
		t.Errorf("Human errors go to stderr, got stdout %q", out.String())
	}
	if !strings.Contains(errOut.String(), "❌ Error: boom") {
		t.Errorf("Unexpected stderr: %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "Suggestion") {
		t.Error("Empty suggestion should not be printed")
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)

	cause := fmt.Errorf("lookup: %w", tracker.ErrTaskNotFound)
	err := f.FailWithSuggestion(cause, "list keys first")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected *ExitError, got %T", err)
	}
	if exitErr.Code != ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", ExitNotFound, exitErr.Code)
	}
	if !errors.Is(err, tracker.ErrTaskNotFound) {
		t.Error("Expected the cause to stay reachable with errors.Is")
	}
	if !strings.Contains(errOut.String(), "💡 Suggestion: list keys first") {
		t.Errorf("Expected suggestion on stderr, got %q", errOut.String())
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"validation", fmt.Errorf("x: %w", tracker.ErrUnknownCategory), ExitValidation, "VALIDATION_ERROR"},
		{"completed", tracker.ErrCommentOnCompleted, ExitValidation, "VALIDATION_ERROR"},
		{"not found", tracker.ErrTaskNotFound, ExitNotFound, "TASK_NOT_FOUND"},
		{"input", fmt.Errorf("%w: stdin", ErrInputRead), ExitDataErr, "INPUT_ERROR"},
		{"fetch", fmt.Errorf("load: %w", dataset.ErrFetchFailed), ExitGeneral, "FETCH_ERROR"},
		{"other", errors.New("disk full"), ExitGeneral, "ERROR"},
		{"already coded", &ExitError{Code: ExitUsage, Err: errors.New("bad")}, ExitUsage, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
			if tt.err == nil {
				return
			}
			if got := errorCode(tt.err); got != tt.code {
				t.Errorf("errorCode(%v) = %q, want %q", tt.err, got, tt.code)
			}
		})
	}
}
