package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dora-styles/internal/workflow"
)

var addSource sourceFlags

// addCmd groups the things that can be added. Only styles exist today.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add resources to your project",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("missing what to add, e.g. dora-styles add styles button")
		}
		return fmt.Errorf("unknown add target %q (supported: styles)", args[0])
	},
}

// addStylesCmd copies one style into the styles directory and links it in the global stylesheet.
var addStylesCmd = &cobra.Command{
	Use:     "styles <name>",
	Short:   "Add a style file and import it from the global stylesheet",
	Example: "  dora-styles add styles button",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return workflow.ErrMissingArgument
		}

		root, err := projectRoot()
		if err != nil {
			return err
		}

		// Fail on a missing config before touching the network or a library archive.
		if _, err := workflow.LoadConfig(appFS, root); err != nil {
			return err
		}

		src, release, err := addSource.build(cmd.Flags())
		if err != nil {
			return err
		}
		defer release()

		add := &workflow.AddStyle{FS: appFS, Root: root, Source: src}
		_, err = add.Run(cmd.Context(), args[0])
		return err
	},
}

func init() {
	addSource.register(addStylesCmd.Flags())
	addCmd.AddCommand(addStylesCmd)
	rootCmd.AddCommand(addCmd)
}
