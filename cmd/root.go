package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"dora-styles/internal/logger"
	"dora-styles/internal/version"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// appFS and getwd are the filesystem and project root every command works against.
// Tests swap them for an in-memory filesystem.
var (
	appFS = afero.NewOsFs()
	getwd = os.Getwd
)

// rootCmd is the base command for the CLI tool `dora-styles`.
// Without a subcommand it prints help.
var rootCmd = &cobra.Command{
	Use:   "dora-styles",
	Short: "Set up Dora Styles and add component styles to your project",
	Example: `  dora-styles init
  dora-styles add styles button
  dora-styles list styles`,
	Version:       version.String(),
	SilenceErrors: true,
	SilenceUsage:  true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

func init() {
	rootCmd.SetVersionTemplate("dora-styles version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the command line and exits non-zero on any error.
// Unknown commands also print the help text.
func Execute() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		logger.Error("%v\n", err)
		if isUnknownCommand(err) {
			_ = rootCmd.Help()
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// projectRoot is the directory all relative paths are resolved against.
func projectRoot() (string, error) {
	root, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine the current directory: %w", err)
	}
	return root, nil
}

func isUnknownCommand(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown command")
}
