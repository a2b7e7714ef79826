package main

import (
	"strings"

	"github.com/aretw0/specdoc/internal/cli"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema]",
	Short: "Generate the reference from a schema",
	Long: `Compiles the schema and writes its reference in the requested format.
With --watch the output is regenerated every time the schema or its
description files change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, args...)
		if err != nil {
			return err
		}
		gen, err := cli.NewGenerator(cfg, logger)
		if err != nil {
			return err
		}

		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()
			return cli.Watch(ctx, gen, cfg.Format, cfg.Output, cmd.OutOrStdout(), logger)
		}

		data, err := cli.Render(cmd.Context(), gen, cfg.Format)
		if err != nil {
			return err
		}
		return cli.WriteOutput(cmd.OutOrStdout(), cfg.Output, data)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("format", "f", cli.FormatMarkdown, "Output format: "+strings.Join(cli.Formats, ", "))
	generateCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	generateCmd.Flags().String("title", "", "Title of the markdown reference")
	generateCmd.Flags().BoolP("watch", "w", false, "Regenerate on schema changes")
}
