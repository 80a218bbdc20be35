// Package core is the Bubble Tea program root for the dashboard
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/circleback/internal/config"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
	"github.com/thenoetrevino/circleback/internal/tui"
	"github.com/thenoetrevino/circleback/internal/tui/state"
)

// Session owns the dashboard model for one run of the program.
// tui.Model updates by value; Session keeps the latest copy.
type Session struct {
	model *tui.Model
}

// New builds a session over svc. A nil cfg uses the defaults.
func New(ctx context.Context, svc tracker.Service, cfg *config.Config) *Session {
	model := tui.InitialModel(ctx, svc, cfg)
	return &Session{model: &model}
}

func (s *Session) Init() tea.Cmd {
	return s.model.Init()
}

func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := s.model.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*s.model = m
	}
	return s, cmd
}

func (s *Session) View() tea.View {
	return s.model.View()
}

// Model returns the current dashboard model
func (s *Session) Model() *tui.Model {
	return s.model
}

// UnresolvedErrors lists error notifications still on screen, oldest first.
// The launcher logs them once the program exits.
func (s *Session) UnresolvedErrors() []string {
	var out []string
	for _, n := range s.model.NotificationState.All() {
		if n.Level == state.LevelError {
			out = append(out, n.Message)
		}
	}
	return out
}
