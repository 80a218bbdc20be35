package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/cli/render"
)

const categorySuggestion = "Valid categories: ghosted, postponed, inProgress, completed"

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <category>",
		Short: "List the tasks in a category",
		Long: `List the tasks of one category grouped by owner or project.

Categories: ghosted, postponed, inProgress, completed

Examples:
  circleback list ghosted
  circleback list postponed --group-by=project
  circleback list inProgress --quiet   # one task key per line
`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().String("group-by", "owner", "Group tasks by owner or project")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	groupBy, _ := cmd.Flags().GetString("group-by")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	view, err := cliInstance.App.TrackerService.Bucket(cmd.Context(), args[0], groupBy)
	if err != nil {
		return formatter.FailWithSuggestion(err, categorySuggestion)
	}

	if formatter.Quiet {
		for _, group := range view.Groups {
			for _, t := range group.Tasks {
				formatter.Println(t.Key())
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(view)
	}

	formatter.Println(render.Bucket(view))
	return nil
}
