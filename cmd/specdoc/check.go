package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/specdoc/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail if a generated file is out of date",
	Long: `Regenerates the reference in memory and compares it with the file given
by --output. Prints a unified diff and exits non-zero when they differ.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if cfg.Output == "" || cfg.Output == "-" {
			return fmt.Errorf("check needs --output")
		}
		gen, err := cli.NewGenerator(cfg, logger)
		if err != nil {
			return err
		}
		data, err := cli.Render(cmd.Context(), gen, cfg.Format)
		if err != nil {
			return err
		}

		diff, err := cli.Diff(cfg.Output, data)
		if err != nil {
			return err
		}
		if diff != "" {
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return fmt.Errorf("%s is out of date, run `specdoc generate -f %s -o %s`", cfg.Output, cfg.Format, cfg.Output)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date ✅\n", cfg.Output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("format", "f", cli.FormatMarkdown, "Output format: "+strings.Join(cli.Formats, ", "))
	checkCmd.Flags().StringP("output", "o", "", "Generated file to compare against")
	checkCmd.Flags().String("title", "", "Title of the markdown reference")
}
