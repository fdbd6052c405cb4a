package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dora-styles/internal/config"
	"dora-styles/internal/source"
)

var (
	listLanguage string
	listLibrary  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available resources",
}

// listStylesCmd prints the styles of the bundled library (or --library).
var listStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the styles available in the style library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		langs, err := listLanguages()
		if err != nil {
			return err
		}

		lib := source.Embedded()
		if listLibrary != "" {
			if lib, err = source.OpenLibrary(listLibrary); err != nil {
				return err
			}
			defer lib.Close()
		}

		heading := color.New(color.FgCyan, color.Bold)
		out := cmd.OutOrStdout()
		for _, lang := range langs {
			styles, err := lib.List(lang)
			if err != nil {
				return err
			}
			heading.Fprintf(out, "%s styles (%s)\n", lang, lib.Describe())
			if len(styles) == 0 {
				fmt.Fprintln(out, "  (none)")
				continue
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, s := range styles {
				fmt.Fprintf(tw, "  %s\t%s\n", s.Name, s.Description)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}
		return nil
	},
}

// listLanguages honors --language, then the project config, then falls back to every language.
func listLanguages() ([]config.StyleLanguage, error) {
	if listLanguage != "" {
		lang, err := config.ParseStyleLanguage(listLanguage)
		if err != nil {
			return nil, err
		}
		return []config.StyleLanguage{lang}, nil
	}

	root, err := projectRoot()
	if err != nil {
		return nil, err
	}
	rec, err := config.NewStore(appFS, root).Read()
	if err != nil {
		return nil, err
	}
	if rec != nil {
		if lang, err := config.ParseStyleLanguage(string(rec.StyleLanguage)); err == nil {
			return []config.StyleLanguage{lang}, nil
		}
	}
	return config.Languages, nil
}

func init() {
	listStylesCmd.Flags().StringVarP(&listLanguage, "language", "l", "", "Style language to list (scss or css)")
	listStylesCmd.Flags().StringVar(&listLibrary, "library", "", "Style library directory or archive to list instead of the bundled one")
	listCmd.AddCommand(listStylesCmd)
	rootCmd.AddCommand(listCmd)
}
