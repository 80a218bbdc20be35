package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/report"
	"github.com/thenoetrevino/circleback/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode handles navigation on the dashboard screen
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.UiState.OpenOverlay(state.HelpMode)
	case key.Matches(msg, m.keys.PrevCategory):
		m.UiState.PrevCategory()
		m.reloadBucket()
	case key.Matches(msg, m.keys.NextCategory):
		m.UiState.NextCategory()
		m.reloadBucket()
	case key.Matches(msg, m.keys.JumpCategory):
		m.UiState.SetCategoryIndex(int(msg.String()[0] - '1'))
		m.reloadBucket()
	case key.Matches(msg, m.keys.NextTask):
		m.UiState.NextTask(len(m.tasks))
	case key.Matches(msg, m.keys.PrevTask):
		m.UiState.PrevTask()
	case key.Matches(msg, m.keys.ToggleGroup):
		m.UiState.ToggleGroupBy()
		m.reloadBucket()
		m.NotificationState.Add(state.LevelInfo, "Grouped by "+string(m.UiState.GroupBy()))
	case key.Matches(msg, m.keys.ViewTask):
		return m.openDetail()
	case key.Matches(msg, m.keys.AddComment):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		// every listed task is matched, so only the completed bucket is closed
		return m.openComment(task.Key(), m.UiState.Category() != models.CategoryCompleted)
	case key.Matches(msg, m.keys.Refresh):
		m.NotificationState.Add(state.LevelInfo, "Refreshing...")
		return m, m.loadData(m.shouldRefetch())
	}

	return m, nil
}

// openDetail shows the highlighted task
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	if err := m.loadDetail(task.Key()); err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return m, nil
	}
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

// secondaryField is the task field not used for grouping
func secondaryField(task models.TaskRecord, by report.GroupBy) string {
	if by == report.GroupByProject {
		return task.Owner
	}
	return task.Project
}
