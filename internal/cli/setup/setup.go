// Package setup holds commands that manage circleback's own configuration
package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/circleback/internal/cli"
	"github.com/thenoetrevino/circleback/internal/config"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by config init when a file is already present
var ErrConfigExists = errors.New("config file already exists")

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the circleback config file",
		Long: `Create or inspect circleback's YAML config.

The file lives at $CIRCLEBACK_CONFIG, else $XDG_CONFIG_HOME/circleback/config.yaml,
else ~/.config/circleback/config.yaml.`,
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file populated with defaults",
		Long: `Write a config file populated with every default value.

Examples:
  circleback config init
  circleback config init --path=./circleback.yaml --force
`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().String("path", "", "Where to write the file (defaults to the config path)")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd, cli.Options(cmd))
			path, err := config.Path()
			if err != nil {
				return formatter.Fail(err)
			}
			formatter.Println(path)
			return nil
		},
	}
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config (file, .env and environment merged)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd, cli.Options(cmd))
			cfg, err := config.Load()
			if err != nil {
				return formatter.Fail(err)
			}
			if formatter.JSON {
				return formatter.Success(cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return formatter.Fail(err)
			}
			formatter.Printf("%s", data)
			return nil
		},
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")

	formatter := cli.NewFormatter(cmd, cli.Options(cmd))

	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return formatter.Fail(err)
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.FailWithSuggestion(
			fmt.Errorf("%w: %s", ErrConfigExists, path),
			"Pass --force to overwrite it")
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return formatter.Fail(err)
	}

	if err := config.Default().SaveTo(path); err != nil {
		return formatter.Fail(fmt.Errorf("failed to write config: %w", err))
	}

	if formatter.Quiet {
		formatter.Println(path)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]string{"path": path})
	}

	formatter.Printf("✓ Wrote default config to %s\n", path)
	return nil
}
