package tutorial

import (
	_ "embed"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/cli/render"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Explain the categories, classification rules and commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			width, _ := cmd.Flags().GetInt("width")
			formatter := cli.NewFormatter(cmd, cli.Options(cmd))

			if raw || formatter.JSON || formatter.Quiet {
				formatter.Printf("%s", tutorialContent)
				return nil
			}
			formatter.Println(render.Markdown(tutorialContent, width))
			return nil
		},
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source")
	cmd.Flags().Int("width", 80, "Wrap width")

	return cmd
}
