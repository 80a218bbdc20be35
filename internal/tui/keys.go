package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/circleback/internal/config"
)

// keyMap holds the dashboard bindings built from the configured key mappings.
// Arrow keys stay bound next to remapped navigation keys.
type keyMap struct {
	PrevCategory key.Binding
	NextCategory key.Binding
	JumpCategory key.Binding
	PrevTask     key.Binding
	NextTask     key.Binding
	ViewTask     key.Binding
	AddComment   key.Binding
	ToggleGroup  key.Binding
	SaveForm     key.Binding
	Cancel       key.Binding
	Refresh      key.Binding
	ShowHelp     key.Binding
	Quit         key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevCategory: key.NewBinding(
			key.WithKeys(km.PrevCategory, "left"),
			key.WithHelp("←/"+km.PrevCategory, "prev category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys(km.NextCategory, "right"),
			key.WithHelp("→/"+km.NextCategory, "next category"),
		),
		JumpCategory: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to category"),
		),
		PrevTask: key.NewBinding(
			key.WithKeys(km.PrevTask, "up"),
			key.WithHelp("↑/"+km.PrevTask, "prev task"),
		),
		NextTask: key.NewBinding(
			key.WithKeys(km.NextTask, "down"),
			key.WithHelp("↓/"+km.NextTask, "next task"),
		),
		ViewTask: key.NewBinding(
			key.WithKeys(km.ViewTask),
			key.WithHelp(km.ViewTask, "open task"),
		),
		AddComment: key.NewBinding(
			key.WithKeys(km.AddComment),
			key.WithHelp(km.AddComment, "comment"),
		),
		ToggleGroup: key.NewBinding(
			key.WithKeys(km.ToggleGroup),
			key.WithHelp(km.ToggleGroup, "owner/project"),
		),
		SaveForm: key.NewBinding(
			key.WithKeys(km.SaveForm),
			key.WithHelp(km.SaveForm, "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(km.Cancel),
			key.WithHelp(km.Cancel, "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(km.Refresh),
			key.WithHelp(km.Refresh, "reload"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp is the status bar hint line on the dashboard
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.NextTask, k.ViewTask, k.AddComment, k.ToggleGroup, k.ShowHelp, k.Quit}
}

// FullHelp is the help overlay, one column per concern
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCategory, k.NextCategory, k.JumpCategory},
		{k.PrevTask, k.NextTask, k.ViewTask, k.AddComment, k.ToggleGroup},
		{k.SaveForm, k.Cancel, k.Refresh, k.ShowHelp, k.Quit},
	}
}

// detailKeys adapts the bindings for the status bar of the detail screen
type detailKeys struct{ keyMap }

func (k detailKeys) ShortHelp() []key.Binding {
	scroll := key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll"))
	return []key.Binding{scroll, k.AddComment, k.Cancel, k.ShowHelp, k.Quit}
}
