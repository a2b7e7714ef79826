package main

import (
	"fmt"

	"github.com/aretw0/specdoc/internal/cli"
	httpAdapter "github.com/aretw0/specdoc/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Generate the artifact once and save it to the store",
	Long: `Generates every output of the schema and saves it to the file store
(--store) or the shared redis store (--redis), where running servers pick it up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if cfg.Store == "" && cfg.Redis.Addr == "" {
			return fmt.Errorf("publish needs --store or --redis")
		}
		gen, err := cli.NewGenerator(cfg, logger)
		if err != nil {
			return err
		}
		backend := cli.OpenBackend(cfg)
		defer backend.Close()

		publisher := httpAdapter.NewPublisher(gen, backend.Store, nil, nil, logger)
		publisher.Locker = backend.Locker

		artifact, err := publisher.Publish(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %q (%d keys) to the %s store ✅\n", artifact.Name, len(artifact.Entries), backend.Kind)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)

	addBackendFlags(publishCmd)
	publishCmd.Flags().String("title", "", "Title of the markdown reference")
}
