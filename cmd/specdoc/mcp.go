package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aretw0/specdoc"
	"github.com/aretw0/specdoc/internal/cli"
	httpAdapter "github.com/aretw0/specdoc/pkg/adapters/http"
	"github.com/aretw0/specdoc/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the generated reference to AI agents as MCP tools and resources.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")

		gen, err := cli.NewGenerator(cfg, logger)
		if err != nil {
			return err
		}
		backend := cli.OpenBackend(cfg)
		defer backend.Close()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		publisher := httpAdapter.NewPublisher(gen, backend.Store, nil, nil, logger)
		publisher.Locker = backend.Locker
		artifact, err := publisher.Publish(ctx)
		if err != nil {
			return err
		}
		if changes, err := gen.Watch(ctx); err == nil {
			go publisher.Follow(ctx, changes)
		}

		srv := mcp.NewServer(backend.Store, artifact.Name, strings.TrimSpace(specdoc.Version))

		switch transport {
		case "stdio":
			// Stdout carries JSON-RPC.
			log.SetOutput(os.Stderr)
			logger.Info("starting specdoc MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			logger.Info("starting specdoc MCP server (SSE)", "port", cfg.Port)
			if err := srv.ServeSSE(ctx, cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	addBackendFlags(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
