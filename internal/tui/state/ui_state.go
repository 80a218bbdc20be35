package state

import (
	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/report"
)

// Mode represents the current interaction mode of the dashboard.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Cards, owner chart and bucket list
	DetailMode              // Scrollable task detail
	CommentMode             // Comment textarea over the previous screen
	HelpMode                // Displaying help screen
)

// String returns the label shown in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case DetailMode:
		return "DETAIL"
	case CommentMode:
		return "COMMENT"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// UIState manages the user interface state.
// This includes navigation (category/task selection), grouping,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedCategory is an index into models.Categories
	selectedCategory int

	// selectedTask is the index of the selected task in the flattened bucket listing
	selectedTask int

	groupBy report.GroupBy

	width  int
	height int

	mode Mode

	// returnMode is the screen beneath the open overlay
	returnMode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		groupBy: report.GroupByOwner,
		mode:    NormalMode,
	}
}

// Category returns the selected bucket
func (s *UIState) Category() models.Category {
	return models.Categories[s.selectedCategory]
}

// CategoryIndex returns the index of the selected bucket
func (s *UIState) CategoryIndex() int {
	return s.selectedCategory
}

// SetCategoryIndex selects a bucket by index and resets the task selection.
// Out of range indexes are ignored.
func (s *UIState) SetCategoryIndex(index int) {
	if index < 0 || index >= len(models.Categories) {
		return
	}
	s.selectedCategory = index
	s.selectedTask = 0
}

// NextCategory moves to the next bucket, wrapping after the last
func (s *UIState) NextCategory() {
	s.SetCategoryIndex((s.selectedCategory + 1) % len(models.Categories))
}

// PrevCategory moves to the previous bucket, wrapping before the first
func (s *UIState) PrevCategory() {
	n := len(models.Categories)
	s.SetCategoryIndex((s.selectedCategory - 1 + n) % n)
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// NextTask moves the selection down, stopping at the last of count tasks
func (s *UIState) NextTask(count int) {
	if s.selectedTask < count-1 {
		s.selectedTask++
	}
}

// PrevTask moves the selection up, stopping at the first task
func (s *UIState) PrevTask() {
	if s.selectedTask > 0 {
		s.selectedTask--
	}
}

// ClampSelectedTask keeps the selection inside a listing of count tasks
func (s *UIState) ClampSelectedTask(count int) {
	s.selectedTask = max(0, min(s.selectedTask, count-1))
}

// GroupBy returns the field the bucket listing is grouped on
func (s *UIState) GroupBy() report.GroupBy {
	return s.groupBy
}

// ToggleGroupBy switches between owner and project grouping
func (s *UIState) ToggleGroupBy() {
	if s.groupBy == report.GroupByProject {
		s.groupBy = report.GroupByOwner
	} else {
		s.groupBy = report.GroupByProject
	}
	s.selectedTask = 0
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the main content area.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2
	const statusBarHeight = 2
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// IsOverlay reports whether the mode is drawn over another screen
func (m Mode) IsOverlay() bool {
	return m == CommentMode || m == HelpMode
}

// OpenOverlay enters an overlay mode, remembering the screen beneath it.
// Opening an overlay from another overlay keeps the original screen.
func (s *UIState) OpenOverlay(mode Mode) {
	if !s.mode.IsOverlay() {
		s.returnMode = s.mode
	}
	s.mode = mode
}

// CloseOverlay returns to the screen the overlay was opened from
func (s *UIState) CloseOverlay() {
	if s.mode.IsOverlay() {
		s.mode = s.returnMode
	}
}

// BaseMode returns the screen drawn beneath any open overlay
func (s *UIState) BaseMode() Mode {
	if s.mode.IsOverlay() {
		return s.returnMode
	}
	return s.mode
}
