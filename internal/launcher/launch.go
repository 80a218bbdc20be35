// Package launcher runs the interactive dashboard until it exits or the process is signalled
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/circleback/internal/app"
	"github.com/thenoetrevino/circleback/internal/tui/core"
)

// Launch starts the TUI over the app's tracker service and blocks until it exits
func Launch(ctx context.Context, application *app.App) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session := core.New(ctx, application.TrackerService, application.Config)
	p := tea.NewProgram(session, tea.WithContext(ctx))
	defer func() {
		for _, msg := range session.UnresolvedErrors() {
			slog.Warn("dashboard closed with an unresolved error", "error", msg)
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// the program restores the terminal once its context is done
		<-errChan
	}

	return nil
}
