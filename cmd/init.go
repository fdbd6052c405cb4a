package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"dora-styles/internal/installer"
	"dora-styles/internal/prompt"
	"dora-styles/internal/version"
	"dora-styles/internal/workflow"
)

var (
	initYes         bool
	initSkipInstall bool
	initSource      sourceFlags
)

// initCmd writes dora.config.json and the shared variables stylesheet.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up Dora Styles in your project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		src, release, err := initSource.build(cmd.Flags())
		if err != nil {
			return err
		}
		defer release()

		var p prompt.Prompter = prompt.Defaults{}
		if !initYes && prompt.IsInteractive(os.Stdin) {
			p = prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
		}

		setup := &workflow.Setup{
			FS:       appFS,
			Root:     root,
			Prompter: p,
			Source:   src,
			Version:  version.String(),
		}
		if !initSkipInstall {
			setup.Toolchain = installer.NewToolchain(appFS, root)
		}

		_, err = setup.Run(cmd.Context())
		return err
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept the default answers without prompting")
	initCmd.Flags().BoolVar(&initSkipInstall, "skip-install", false, "Do not install sass for SCSS projects")
	initSource.register(initCmd.Flags())
	rootCmd.AddCommand(initCmd)
}
