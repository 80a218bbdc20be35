package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/circleback/internal/cli/styles"
	"github.com/thenoetrevino/circleback/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ShowHelp, m.keys.Quit, m.keys.Cancel):
		m.UiState.CloseOverlay()
	case msg.String() == "enter", msg.String() == "space":
		m.UiState.CloseOverlay()
	}
	return m, nil
}

// helpText lists the configured key bindings
func (m Model) helpText() string {
	return styles.TitleStyle.Render("CIRCLEBACK - Keyboard Shortcuts") +
		"\n\n" +
		m.help.FullHelpView(m.keys.FullHelp())
}

// shortHelp is the key hint line for the current screen
func (m Model) shortHelp() string {
	if m.UiState.BaseMode() == state.DetailMode {
		return m.help.ShortHelpView(detailKeys{m.keys}.ShortHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}
