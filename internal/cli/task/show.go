package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/cli/render"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Show task details",
		Long: `Display a task with its category alert, timeline and comments.

A task key is "<Project>-<Task description>"; quote it.

Examples:
  circleback show "Apollo-Update vendor contract"
  circleback show "Apollo-Update vendor contract" --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Int("width", 80, "Wrap width for the rendered detail")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	detail, err := cliInstance.App.TrackerService.TaskDetail(cmd.Context(), args[0])
	if err != nil {
		return formatter.FailWithSuggestion(err, "List task keys with: circleback classify --quiet")
	}

	if formatter.Quiet {
		formatter.Println(detail.Key)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(detail)
	}

	formatter.Println(render.Markdown(detail.Markdown(), width))
	return nil
}
