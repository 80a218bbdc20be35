package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/cli/render"
)

// OwnersCmd returns the owners command
func OwnersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owners",
		Short: "Chart open tasks per owner",
		Long: `Show ghosted, postponed and in-progress counts per owner, busiest first.

Only the top owners are charted unless --all is given.

Examples:
  circleback owners
  circleback owners --all --table
  circleback owners --json
`,
		Args: cobra.NoArgs,
		RunE: runOwners,
	}

	cmd.Flags().Bool("all", false, "Include every owner, not just the top ones")
	cmd.Flags().Bool("table", false, "Print a plain table instead of a bar chart")
	cmd.Flags().Int("width", 40, "Width of the longest bar")

	return cmd
}

func runOwners(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	table, _ := cmd.Flags().GetBool("table")
	width, _ := cmd.Flags().GetInt("width")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	dash, err := cliInstance.App.TrackerService.Dashboard(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	rows := dash.TopOwners
	if all {
		rows = dash.Owners
	}

	if formatter.Quiet {
		for _, row := range rows {
			formatter.Println(row.Owner)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(rows)
	}

	if table {
		formatter.Println(render.OwnerTable(rows))
		return nil
	}
	formatter.Println(render.OwnerChart(rows, width))
	return nil
}
