package main

import (
	"fmt"
	"os"

	"github.com/aretw0/specdoc"
	"github.com/aretw0/specdoc/internal/cli"
	"github.com/aretw0/specdoc/internal/presentation/markdown"
	"github.com/aretw0/specdoc/internal/presentation/tui"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the reference in the terminal",
	Long:  `Renders the markdown reference with terminal styling. Piped output is left unstyled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		gen, err := cli.NewGenerator(cfg, logger)
		if err != nil {
			return err
		}

		doc, err := gen.Markdown(cmd.Context())
		if err != nil {
			return err
		}
		if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
			entries, err := gen.Entries(cmd.Context())
			if err != nil {
				return err
			}
			doc = markdown.Render(domain.FilterEntries(entries, domain.ParsePath(prefix)), specdoc.Document{
				Title: "`" + prefix + "`",
			})
		}

		width, _ := cmd.Flags().GetInt("width")
		render, err := tui.NewRenderer(width)
		if err != nil {
			return err
		}
		out, err := render(doc)
		if err != nil {
			return err
		}

		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout(), "reference for "+gen.Name)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("prefix", "p", "", "Only show keys under this dotted key")
	showCmd.Flags().Int("width", 0, "Wrap width (default terminal width)")
}
