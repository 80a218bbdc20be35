package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/circleback/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case DataLoadedMsg:
		return m.handleDataLoaded(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	// cursor blinks and other internal messages belong to the focused form
	if m.UiState.Mode() == state.CommentMode {
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress dispatches key presses to the handler of the current mode
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.CommentMode:
		return m.handleCommentMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleDataLoaded(msg DataLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("failed to load dataset", "error", msg.Err)
		m.NotificationState.Add(state.LevelError, msg.Err.Error())
	}
	if msg.Dashboard == nil {
		return m, nil
	}

	m.dashboard = msg.Dashboard
	if msg.Err == nil && msg.Dashboard.LastError != "" {
		m.NotificationState.Add(state.LevelWarning,
			fmt.Sprintf("Default dataset unavailable: %s", msg.Dashboard.LastError))
	}
	m.reloadBucket()
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)

	m.commentInput.SetWidth(commentFormWidth(msg.Width) - 4)
	if m.detail != nil {
		m.resizeDetailView()
		m.renderDetail()
	}
	return m, nil
}
