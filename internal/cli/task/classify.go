package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/cli/render"
)

// ClassifyCmd returns the classify command
func ClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Show the category and deciding rule of every task",
		Long: `Classify every record of the dataset and report the rule that decided it.

Records no rule could place are reported as unmatched.

Examples:
  circleback classify --file=tracker.csv
  circleback classify --quiet   # key<TAB>category
`,
		Args: cobra.NoArgs,
		RunE: runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	results, err := cliInstance.App.TrackerService.Classifications(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, r := range results {
			category := "unmatched"
			if r.Matched {
				category = string(r.Category)
			}
			formatter.Printf("%s\t%s\n", r.Key, category)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(results)
	}

	formatter.Println(render.Classifications(results))
	return nil
}
