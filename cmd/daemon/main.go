// Command circlebackd serves the tracker API without the rest of the CLI
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/circleback/internal/app"
	"github.com/thenoetrevino/circleback/internal/config"
	"github.com/thenoetrevino/circleback/internal/daemon"
	"github.com/thenoetrevino/circleback/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	if err := logging.Init(logging.Options{Level: cfg.LogLevel, Stderr: true}); err != nil {
		slog.Warn("file logging unavailable, logging to stderr only", "error", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default().With("component", "circlebackd")))
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	// Create and start the daemon server
	serverCfg := daemon.ConfigFrom(cfg)
	serverCfg.Logger = application.Logger()
	server, err := daemon.NewServer(serverCfg, application.TrackerService)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		return 1
	}

	slog.Info("circleback daemon starting", "addr", server.Addr(), "pid", os.Getpid())

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		return 1
	}

	slog.Info("circleback daemon shut down gracefully")
	return 0
}
