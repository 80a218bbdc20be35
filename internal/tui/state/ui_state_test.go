package state

import (
	"testing"

	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/report"
)

// TestNewUIState_Defaults ensures the dashboard opens on ghosted, grouped by owner.
func TestNewUIState_Defaults(t *testing.T) {
	s := NewUIState()

	if s.Category() != models.CategoryGhosted {
		t.Errorf("Category() = %q, want ghosted", s.Category())
	}
	if s.GroupBy() != report.GroupByOwner {
		t.Errorf("GroupBy() = %q, want owner", s.GroupBy())
	}
	if s.Mode() != NormalMode {
		t.Errorf("Mode() = %v, want NORMAL", s.Mode())
	}
}

// TestCategoryNavigation_Wraps ensures left/right cycle through the four buckets.
// Edge case: Pressing left on the first card lands on the last one.
func TestCategoryNavigation_Wraps(t *testing.T) {
	s := NewUIState()

	s.PrevCategory()
	if s.Category() != models.CategoryCompleted {
		t.Errorf("PrevCategory from first = %q, want completed", s.Category())
	}

	s.NextCategory()
	if s.Category() != models.CategoryGhosted {
		t.Errorf("NextCategory from last = %q, want ghosted", s.Category())
	}
}

// TestSetCategoryIndex_ResetsTask ensures switching buckets starts at the top of the list.
func TestSetCategoryIndex_ResetsTask(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(3)

	s.SetCategoryIndex(2)

	if s.Category() != models.CategoryInProgress {
		t.Errorf("Category() = %q, want inProgress", s.Category())
	}
	if s.SelectedTask() != 0 {
		t.Errorf("SelectedTask() = %d, want 0", s.SelectedTask())
	}
}

// TestSetCategoryIndex_OutOfRange ensures invalid indexes leave the selection alone.
// Security value: Prevents index out of range on models.Categories.
func TestSetCategoryIndex_OutOfRange(t *testing.T) {
	s := NewUIState()
	s.SetCategoryIndex(1)

	s.SetCategoryIndex(-1)
	s.SetCategoryIndex(len(models.Categories))

	if s.CategoryIndex() != 1 {
		t.Errorf("CategoryIndex() = %d, want 1", s.CategoryIndex())
	}
}

// TestTaskNavigation_Bounds ensures up/down stop at the ends of the listing.
func TestTaskNavigation_Bounds(t *testing.T) {
	s := NewUIState()

	s.PrevTask()
	if s.SelectedTask() != 0 {
		t.Errorf("PrevTask at top = %d, want 0", s.SelectedTask())
	}

	s.NextTask(2)
	s.NextTask(2)
	s.NextTask(2)
	if s.SelectedTask() != 1 {
		t.Errorf("NextTask past end = %d, want 1", s.SelectedTask())
	}

	s.NextTask(0)
	if s.SelectedTask() != 1 {
		t.Errorf("NextTask on empty list moved selection to %d", s.SelectedTask())
	}
}

// TestClampSelectedTask ensures the selection survives a shorter listing.
// Edge case: Dataset reload leaves fewer tasks in the bucket.
func TestClampSelectedTask(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(5)

	s.ClampSelectedTask(3)
	if s.SelectedTask() != 2 {
		t.Errorf("ClampSelectedTask(3) = %d, want 2", s.SelectedTask())
	}

	s.ClampSelectedTask(0)
	if s.SelectedTask() != 0 {
		t.Errorf("ClampSelectedTask(0) = %d, want 0", s.SelectedTask())
	}
}

func TestToggleGroupBy(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(2)

	s.ToggleGroupBy()
	if s.GroupBy() != report.GroupByProject {
		t.Errorf("GroupBy() = %q, want project", s.GroupBy())
	}
	if s.SelectedTask() != 0 {
		t.Errorf("SelectedTask() = %d, want 0 after regrouping", s.SelectedTask())
	}

	s.ToggleGroupBy()
	if s.GroupBy() != report.GroupByOwner {
		t.Errorf("GroupBy() = %q, want owner", s.GroupBy())
	}
}

// TestOverlay_ReturnsToOpener ensures closing an overlay restores the screen beneath it.
func TestOverlay_ReturnsToOpener(t *testing.T) {
	tests := []struct {
		name    string
		from    Mode
		overlay Mode
	}{
		{"comment from normal", NormalMode, CommentMode},
		{"comment from detail", DetailMode, CommentMode},
		{"help from detail", DetailMode, HelpMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetMode(tt.from)

			s.OpenOverlay(tt.overlay)
			if s.Mode() != tt.overlay {
				t.Fatalf("Mode() = %v, want %v", s.Mode(), tt.overlay)
			}
			if s.BaseMode() != tt.from {
				t.Errorf("BaseMode() = %v, want %v", s.BaseMode(), tt.from)
			}

			// stacking overlays must not lose the original screen
			s.OpenOverlay(HelpMode)
			s.CloseOverlay()
			if s.Mode() != tt.from {
				t.Errorf("Mode() after close = %v, want %v", s.Mode(), tt.from)
			}
		})
	}
}

// TestCloseOverlay_NoOverlay ensures closing without an overlay is a no-op.
func TestCloseOverlay_NoOverlay(t *testing.T) {
	s := NewUIState()
	s.SetMode(DetailMode)

	s.CloseOverlay()

	if s.Mode() != DetailMode {
		t.Errorf("Mode() = %v, want DETAIL", s.Mode())
	}
}

// TestContentHeight_Minimum ensures tiny terminals still get a usable body.
func TestContentHeight_Minimum(t *testing.T) {
	s := NewUIState()
	s.SetHeight(3)

	if got := s.ContentHeight(); got != 5 {
		t.Errorf("ContentHeight() = %d, want 5", got)
	}

	s.SetHeight(40)
	if got := s.ContentHeight(); got != 36 {
		t.Errorf("ContentHeight() = %d, want 36", got)
	}
}

func TestNotificationState(t *testing.T) {
	n := NewNotificationState()

	if _, ok := n.Latest(); ok {
		t.Error("Latest() on empty state returned ok")
	}

	n.Add(LevelInfo, "first")
	n.Add(LevelError, "second")

	latest, ok := n.Latest()
	if !ok || latest.Message != "second" || latest.Level != LevelError {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}
	if len(n.All()) != 2 {
		t.Errorf("All() has %d notifications, want 2", len(n.All()))
	}

	n.Clear()
	if n.HasAny() {
		t.Error("HasAny() after Clear = true")
	}
}
