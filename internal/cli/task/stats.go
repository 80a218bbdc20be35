package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/cli/render"
	"github.com/thenoetrevino/circleback/internal/cli/styles"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts per category",
		Long: `Show how many tasks fall into each category, with their share of the dataset.

Examples:
  # Default dataset
  circleback stats

  # Local export
  circleback stats --file=tracker.csv

  # JSON output for scripts
  circleback stats --file=- --json < tracker.csv

  # Total only
  circleback stats --quiet
`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	dash, err := cliInstance.App.TrackerService.Dashboard(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.Printf("%d\n", dash.Summary.Total)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(dash)
	}

	formatter.Println(render.StatCards(dash.Summary, ""))

	if dash.Stale > 0 {
		formatter.Println(styles.WarningStyle.Render(fmt.Sprintf(
			"%d open tasks not mentioned in over %d days",
			dash.Stale, cliInstance.App.Config.StaleAfterDays)))
	}
	if dash.Skipped > 0 {
		formatter.Println(styles.SubtitleStyle.Render(fmt.Sprintf(
			"%d malformed rows skipped", dash.Skipped)))
	}
	if len(dash.MissingColumns) > 0 {
		formatter.Println(styles.WarningStyle.Render(fmt.Sprintf(
			"missing columns: %v", dash.MissingColumns)))
	}

	return nil
}
