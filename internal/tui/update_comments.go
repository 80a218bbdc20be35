package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
	"github.com/thenoetrevino/circleback/internal/tui/state"
)

// ============================================================================
// COMMENT MODE HANDLERS
// ============================================================================

// openComment opens the comment form for key. Closed tasks get a warning instead.
func (m Model) openComment(key string, canComment bool) (tea.Model, tea.Cmd) {
	if !canComment {
		m.NotificationState.Add(state.LevelWarning, tracker.ErrCommentOnCompleted.Error())
		return m, nil
	}

	m.commentKey = key
	m.commentInput.Reset()
	m.UiState.OpenOverlay(state.CommentMode)
	return m, m.commentInput.Focus()
}

// handleCommentMode handles input in the comment form.
// Everything except save and cancel goes to the textarea.
func (m Model) handleCommentMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeComment()
		return m, nil
	case key.Matches(msg, m.keys.SaveForm):
		return m.saveComment()
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

// saveComment stores the form's message. On a validation error the form stays open.
func (m Model) saveComment() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	comment, err := m.svc.AddComment(m.Ctx, tracker.AddCommentRequest{
		TaskKey: m.commentKey,
		Message: m.commentInput.Value(),
	})
	if err != nil {
		if !tracker.IsValidation(err) {
			slog.Error("failed to add comment", "task", m.commentKey, "error", err)
		}
		m.NotificationState.Add(state.LevelError, err.Error())
		return m, nil
	}

	key := m.commentKey
	m.closeComment()
	m.NotificationState.Add(state.LevelInfo, "Comment added by "+comment.Author)
	m.reloadBucket()

	if m.UiState.Mode() == state.DetailMode {
		if err := m.loadDetail(key); err != nil {
			m.NotificationState.Add(state.LevelError, err.Error())
		}
	}
	return m, nil
}

func (m *Model) closeComment() {
	m.commentInput.Blur()
	m.commentInput.Reset()
	m.commentKey = ""
	m.UiState.CloseOverlay()
}
