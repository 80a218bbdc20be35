package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/daemon"
)

// ServeCmd runs the HTTP API until interrupted
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tracker as a JSON API",
		Long: `Serve the tracker over HTTP. The dataset given with --file is loaded at
startup; otherwise the default dataset is fetched on the first request.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{logStderrAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.Options(cmd)
			formatter := cli.NewFormatter(cmd, opts)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return formatter.Fail(err)
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("error closing CLI", "error", err)
				}
			}()

			if opts.File != "" {
				if err := cliInstance.LoadDataset(ctx, opts.File, cmd.InOrStdin()); err != nil {
					return formatter.Fail(err)
				}
			}

			serverCfg := daemon.ConfigFrom(cliInstance.App.Config)
			serverCfg.Logger = cliInstance.App.Logger()
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				serverCfg.Addr = addr
			}

			server, err := daemon.NewServer(serverCfg, cliInstance.App.TrackerService)
			if err != nil {
				return formatter.Fail(err)
			}

			if !opts.Quiet && !opts.JSON {
				formatter.Printf("Listening on http://%s\n", server.Addr())
			}

			if err := server.Start(ctx); err != nil {
				return formatter.Fail(fmt.Errorf("daemon error: %w", err))
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides listen_addr from config)")
	return cmd
}
