package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/circleback/internal/cli/render"
	"github.com/thenoetrevino/circleback/internal/cli/styles"
	"github.com/thenoetrevino/circleback/internal/tui/state"
)

const (
	chartBarWidth = 20
	minListWidth  = 30
)

// View renders the current state of the application.
// Overlays (comment form, help) are drawn as layers over the current screen.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewScreen()),
	}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.CommentMode:
		modal = centeredLayer(m.viewCommentForm(), m.UiState.Width(), m.UiState.Height())
	case state.HelpMode:
		modal = centeredLayer(m.viewHelp(), m.UiState.Width(), m.UiState.Height())
	}
	if modal != nil {
		layers = append(layers, modal)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewScreen renders the screen beneath any overlay
func (m Model) viewScreen() string {
	var body string
	if m.UiState.BaseMode() == state.DetailMode {
		body = m.viewDetail()
	} else {
		body = m.viewDashboard()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewStatusBar(),
	)
}

func (m Model) viewHeader() string {
	title := styles.TitleStyle.Render("circleback")
	if m.dashboard == nil || m.dashboard.SnapshotID == "" {
		return title + "\n"
	}
	source := styles.SubtitleStyle.Render(fmt.Sprintf("  %s · loaded %s",
		m.dashboard.Source, m.dashboard.LoadedAt.Format("Jan 2 15:04")))
	return title + source + "\n"
}

// viewDashboard renders the stat cards above the bucket listing and owner chart
func (m Model) viewDashboard() string {
	if m.dashboard == nil {
		return styles.SubtitleStyle.Render("Loading dataset...")
	}

	cards := render.StatCards(m.dashboard.Summary, m.UiState.Category())

	chart := m.viewOwnerChart()
	listWidth := max(m.UiState.Width()-lipgloss.Width(chart)-2, minListWidth)
	listHeight := max(m.UiState.ContentHeight()-lipgloss.Height(cards), 3)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewTaskList(listWidth, listHeight),
		"  ",
		chart,
	)
	return lipgloss.JoinVertical(lipgloss.Left, cards, "", body)
}

func (m Model) viewOwnerChart() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle.Render("Open tasks by owner"),
		render.OwnerChart(m.dashboard.TopOwners, chartBarWidth),
		"",
		render.Legend(),
	)
}

// viewTaskList renders the selected bucket with a cursor on the selected task.
// The listing scrolls to keep the cursor inside height lines.
func (m Model) viewTaskList(width, height int) string {
	if m.bucket == nil {
		return ""
	}

	header := styles.CategoryText(m.bucket.Category,
		fmt.Sprintf("%s (%d) · by %s", m.bucket.Title, m.bucket.Count, m.bucket.GroupBy))
	if m.bucket.Count == 0 {
		return header + "\n" + styles.SubtitleStyle.Render("No tasks")
	}

	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(styles.Scheme().SelectedBorder))

	var lines []string
	cursorLine := 0
	index := 0
	for _, group := range m.bucket.Groups {
		lines = append(lines, styles.LabelStyle.Render(fmt.Sprintf("%s (%d)", group.Name, len(group.Tasks))))
		for _, task := range group.Tasks {
			text := fmt.Sprintf("%s [%s]", task.Description, secondaryField(task, m.bucket.GroupBy))
			if n := m.bucket.CommentCounts[task.Key()]; n > 0 {
				text += fmt.Sprintf(" 💬 %d", n)
			}
			text = ansi.Truncate(text, width-4, "…")
			if index == m.UiState.SelectedTask() {
				cursorLine = len(lines)
				lines = append(lines, selectedStyle.Render("▸ "+text))
			} else {
				lines = append(lines, "  "+styles.ValueStyle.Render(text))
			}
			index++
		}
	}

	visible := scrollWindow(lines, cursorLine, height-1)
	return header + "\n" + strings.Join(visible, "\n")
}

// scrollWindow returns at most height lines of lines, keeping cursor visible
func scrollWindow(lines []string, cursor, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := max(cursor-height+1, 0)
	start = min(start, len(lines)-height)
	return lines[start : start+height]
}

func (m Model) viewDetail() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Scheme().Accent))

	if m.detail != nil && m.detail.Category != "" {
		border = border.BorderForeground(lipgloss.Color(styles.CategoryColor(m.detail.Category)))
	}
	return border.Render(m.detailView.View())
}

func (m Model) viewCommentForm() string {
	width := commentFormWidth(m.UiState.Width())
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Comment on "+ansi.Truncate(m.commentKey, width-16, "…")),
		"",
		m.commentInput.View(),
		"",
		styles.SubtitleStyle.Render(fmt.Sprintf("%s save • %s cancel",
			m.Config.KeyMappings.SaveForm, m.Config.KeyMappings.Cancel)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Scheme().SelectedBorder)).
		Padding(0, 1).
		Width(width).
		Render(content)
}

func (m Model) viewHelp() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Scheme().Accent)).
		Padding(1, 2).
		Render(m.helpText())
}

// viewStatusBar shows the mode and the latest notification, or the key hints
func (m Model) viewStatusBar() string {
	mode := styles.LabelStyle.Render(" " + m.UiState.Mode().String() + " ")

	if n, ok := m.NotificationState.Latest(); ok {
		style := styles.SuccessStyle
		switch n.Level {
		case state.LevelWarning:
			style = styles.WarningStyle
		case state.LevelError:
			style = styles.ErrorStyle
		}
		return "\n" + mode + " " + style.Render(n.Message)
	}

	return "\n" + mode + " " + m.shortHelp()
}
