package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// StdinFile is the --file value that reads the dataset from stdin
const StdinFile = "-"

// GlobalOptions are the flags shared by every data command
type GlobalOptions struct {
	File  string
	JSON  bool
	Quiet bool
}

// AddGlobalFlags registers --file, --json and --quiet as persistent flags
func AddGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("file", "", "Tracker CSV to load (use - for stdin; default dataset URL if omitted)")
	pf.Bool("json", false, "Output in JSON format")
	pf.Bool("quiet", false, "Minimal output")
}

// Options reads the global flags of cmd
func Options(cmd *cobra.Command) GlobalOptions {
	file, _ := cmd.Flags().GetString("file")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return GlobalOptions{File: file, JSON: jsonOutput, Quiet: quietMode}
}

// NewFormatter returns a formatter writing to the command's streams
func NewFormatter(cmd *cobra.Command, opts GlobalOptions) *OutputFormatter {
	return &OutputFormatter{
		JSON:  opts.JSON,
		Quiet: opts.Quiet,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Setup resolves flags, the CLI instance and the dataset for a data command.
// On failure the error is already reported and carries the exit code.
func Setup(cmd *cobra.Command) (*CLI, *OutputFormatter, error) {
	opts := Options(cmd)
	formatter := NewFormatter(cmd, opts)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		return nil, formatter, formatter.Fail(err)
	}

	if err := cliInstance.LoadDataset(ctx, opts.File, cmd.InOrStdin()); err != nil {
		_ = cliInstance.Close()
		return nil, formatter, formatter.Fail(err)
	}

	return cliInstance, formatter, nil
}

// ReadInput reads the dataset named by file and returns a source label and its text
func ReadInput(file string, stdin io.Reader) (string, string, error) {
	if file == StdinFile {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("%w: stdin: %w", ErrInputRead, err)
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", err
		}
		return "", "", fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	return filepath.Base(file), string(data), nil
}
