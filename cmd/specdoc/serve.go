package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/specdoc"
	"github.com/aretw0/specdoc/internal/cli"
	httpAdapter "github.com/aretw0/specdoc/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reference over HTTP",
	Long: `Publishes the generated artifact to the configured store and serves it
as JSON, markdown and JSON Schema. The artifact is republished whenever the
schema changes and subscribers of /events are notified.

With --redis several replicas can share one artifact; publication is
serialized by a redis lock.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		gen, err := cli.NewGenerator(cfg, logger)
		if err != nil {
			return err
		}
		backend := cli.OpenBackend(cfg)
		defer backend.Close()

		streams := httpAdapter.NewStreamManager()
		metrics := httpAdapter.NewMetrics()
		publisher := httpAdapter.NewPublisher(gen, backend.Store, streams, metrics, logger)
		publisher.Locker = backend.Locker

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		artifact, err := publisher.Publish(ctx)
		if err != nil {
			return err
		}

		if noWatch, _ := cmd.Flags().GetBool("no-watch"); !noWatch {
			changes, err := gen.Watch(ctx)
			if err != nil {
				return err
			}
			go publisher.Follow(ctx, changes)
		}

		handler := httpAdapter.NewHandler(backend.Store, artifact.Name,
			httpAdapter.WithStreams(streams),
			httpAdapter.WithMetrics(metrics),
			httpAdapter.WithVersion(strings.TrimSpace(specdoc.Version)),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting specdoc server", "address", srv.Addr, "schema", cfg.Schema, "store", backend.Kind)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("shutting down", "signal", ctx.Signal())

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("killing server: %w", err)
				}
			}
			logger.Info("specdoc server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addBackendFlags(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("title", "", "Title of the markdown reference")
	serveCmd.Flags().Bool("no-watch", false, "Do not republish on schema changes")
}

// addBackendFlags registers the artifact store flags shared by serve, publish and mcp.
func addBackendFlags(cmd *cobra.Command) {
	cmd.Flags().String("store", "", "Directory of the file artifact store (default in-memory)")
	cmd.Flags().String("redis", "", "Redis address of a shared artifact store, e.g. localhost:6379")
	cmd.Flags().String("redis-password", "", "Redis password")
	cmd.Flags().Int("redis-db", 0, "Redis database")
	cmd.Flags().String("redis-prefix", "specdoc:", "Prefix of every redis key")
	cmd.Flags().Duration("redis-ttl", 0, "Expiry of stored artifacts (0 keeps them)")
}
