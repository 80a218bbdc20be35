package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/circleback/internal/cli/render"
	"github.com/thenoetrevino/circleback/internal/tui/state"
)

// ============================================================================
// DETAIL MODE HANDLERS
// ============================================================================

// handleDetailMode handles input while a task detail is open.
// Unbound keys scroll the viewport.
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case key.Matches(msg, m.keys.ShowHelp):
		m.UiState.OpenOverlay(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.AddComment):
		if m.detail == nil {
			return m, nil
		}
		return m.openComment(m.detail.Key, m.detail.CanComment)
	}

	var cmd tea.Cmd
	m.detailView, cmd = m.detailView.Update(msg)
	return m, cmd
}

// detailWidth is the wrap width of the rendered task detail
func (m Model) detailWidth() int {
	return max(m.UiState.Width()-4, 20)
}

// resizeDetailView fits the viewport inside the detail border
func (m *Model) resizeDetailView() {
	m.detailView.SetWidth(m.detailWidth())
	m.detailView.SetHeight(max(m.UiState.ContentHeight()-2, 3))
}

// renderDetail renders the current detail as markdown into the viewport
func (m *Model) renderDetail() {
	if m.detail == nil {
		return
	}
	m.detailView.SetContent(render.Markdown(m.detail.Markdown(), m.detailWidth()))
}
