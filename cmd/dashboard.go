package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/dataset"
	"github.com/thenoetrevino/circleback/internal/launcher"
)

// DashboardCmd opens the interactive dashboard
func DashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"tui"},
		Short:   "Open the interactive dashboard",
		Long: `Open the interactive dashboard: category cards, the owner chart and
bucket listings, with task details and comments.

Keys: ←/→ or 1-4 switch category, ↑/↓ move, enter opens a task,
c comments, g toggles grouping, r reloads, ? help, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.Options(cmd)
			formatter := cli.NewFormatter(cmd, opts)
			ctx := cmd.Context()

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return formatter.Fail(err)
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("error closing CLI", "error", err)
				}
			}()

			// an unreachable default dataset is shown in the dashboard instead
			err = cliInstance.LoadDataset(ctx, opts.File, cmd.InOrStdin())
			if err != nil && !(opts.File == "" && isFetchError(err)) {
				return formatter.Fail(err)
			}

			if err := launcher.Launch(ctx, cliInstance.App); err != nil {
				return formatter.Fail(err)
			}
			return nil
		},
	}
}

func isFetchError(err error) bool {
	return errors.Is(err, dataset.ErrFetchFailed) || errors.Is(err, dataset.ErrNoDefaultURL)
}
