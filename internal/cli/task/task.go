// Package task holds the data commands: stats, owners, list, show,
// classify and comment.
package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
)

// Commands returns every data command, ready to attach to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		StatsCmd(),
		OwnersCmd(),
		ListCmd(),
		ShowCmd(),
		ClassifyCmd(),
		CommentCmd(),
	}
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}
