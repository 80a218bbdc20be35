// Package cmd wires the circleback command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/cli/setup"
	"github.com/thenoetrevino/circleback/internal/cli/styles"
	"github.com/thenoetrevino/circleback/internal/cli/task"
	"github.com/thenoetrevino/circleback/internal/cli/tutorial"
	"github.com/thenoetrevino/circleback/internal/config"
	"github.com/thenoetrevino/circleback/internal/logging"
)

// logStderrAnnotation marks commands whose logs are mirrored to stderr
const logStderrAnnotation = "log-stderr"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "circleback",
		Short: "circleback - meeting follow-up tracker",
		Long: `circleback reads a meeting-tracker CSV export and sorts every task into
ghosted, postponed, in-progress or completed so nothing said in a meeting
is silently dropped.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initAmbient,
	}

	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(task.Commands()...)
	rootCmd.AddCommand(
		ServeCmd(),
		DashboardCmd(),
		setup.ConfigCmd(),
		tutorial.TutorialCmd(),
	)

	return rootCmd
}

// initAmbient sets up logging and the color theme before any command runs
func initAmbient(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: failed to load config: %v\n", err)
		return &cli.ExitError{Code: cli.ExitGeneral, Err: err}
	}

	opts := logging.Options{
		Level:  cfg.LogLevel,
		Stderr: cmd.Annotations[logStderrAnnotation] == "true",
	}
	if err := logging.Init(opts); err != nil {
		// logging is best effort for one-shot commands
		logging.Discard()
	}

	styles.Init(cfg.ColorScheme)
	return nil
}

// Execute runs the command tree against the process arguments and returns the exit code
func Execute() int {
	return run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// anything cobra returns unwrapped is a usage problem
	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return cli.ExitUsage
}
