package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/specdoc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of specdoc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "specdoc version %s\n", strings.TrimSpace(specdoc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
