package main

import (
	"github.com/aretw0/specdoc/internal/cli"
	"github.com/aretw0/specdoc/internal/presentation/tui"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every documented key as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		gen, err := cli.NewGenerator(cfg, logger)
		if err != nil {
			return err
		}
		entries, err := gen.Entries(cmd.Context())
		if err != nil {
			return err
		}
		if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
			entries = domain.FilterEntries(entries, domain.ParsePath(prefix))
		}
		tui.WriteTable(cmd.OutOrStdout(), entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("prefix", "p", "", "Only list keys under this dotted key")
}
