package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/aretw0/specdoc/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs exposed by the server.
const (
	ReferenceURI  = "specdoc://reference.md"
	JSONSchemaURI = "specdoc://schema.json"
)

// ListEntriesArgs are the arguments of the list_entries tool.
type ListEntriesArgs struct {
	Prefix string `json:"prefix,omitempty"`
}

// ListEntriesResponse is the structured result of the list_entries tool.
type ListEntriesResponse struct {
	Entries []domain.Entry `json:"entries" jsonschema_description:"Documented keys in order"`
}

// DescribeKeyArgs are the arguments of the describe_key tool.
type DescribeKeyArgs struct {
	Key string `json:"key"`
}

// DescribeKeyResponse is the structured result of the describe_key tool.
type DescribeKeyResponse struct {
	Entry domain.Entry `json:"entry" jsonschema_description:"The documented key"`
	// Aliases lists the other keys documented as aliases of this one.
	Aliases []string `json:"aliases,omitempty" jsonschema_description:"Alternate spellings of the key"`
}

// Server exposes a stored artifact to MCP clients.
type Server struct {
	store     ports.ArtifactStore
	artifact  string
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(store ports.ArtifactStore, artifact, version string) *Server {
	s := &Server{
		store:     store,
		artifact:  artifact,
		mcpServer: server.NewMCPServer("specdoc-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: list_entries
	listTool := mcp.NewTool("list_entries",
		mcp.WithDescription("List the documented configuration keys, optionally below a dotted prefix."),
		mcp.WithString("prefix", mcp.Description("Dotted key prefix, e.g. matrix.include (optional)")),
		mcp.WithOutputSchema[ListEntriesResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListEntries))

	// TOOL: describe_key
	describeTool := mcp.NewTool("describe_key",
		mcp.WithDescription("Describe one configuration key: description, expected format and flags."),
		mcp.WithString("key", mcp.Required(), mcp.Description("Dotted key, e.g. matrix.include[].os")),
		mcp.WithOutputSchema[DescribeKeyResponse](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribeKey))
}

func (s *Server) load(ctx context.Context) (*domain.Artifact, error) {
	artifact, err := s.store.Load(ctx, s.artifact)
	if errors.Is(err, domain.ErrArtifactNotFound) {
		return nil, fmt.Errorf("artifact %q has not been published yet", s.artifact)
	}
	return artifact, err
}

func (s *Server) handleListEntries(ctx context.Context, request mcp.CallToolRequest, args ListEntriesArgs) (ListEntriesResponse, error) {
	artifact, err := s.load(ctx)
	if err != nil {
		return ListEntriesResponse{}, err
	}
	entries := artifact.Entries
	if args.Prefix != "" {
		entries = domain.FilterEntries(entries, domain.ParsePath(args.Prefix))
	}
	return ListEntriesResponse{Entries: entries}, nil
}

func (s *Server) handleDescribeKey(ctx context.Context, request mcp.CallToolRequest, args DescribeKeyArgs) (DescribeKeyResponse, error) {
	if args.Key == "" {
		return DescribeKeyResponse{}, fmt.Errorf("key is required")
	}
	artifact, err := s.load(ctx)
	if err != nil {
		return DescribeKeyResponse{}, err
	}

	key := domain.ParsePath(args.Key)
	entry, ok := domain.FindEntry(artifact.Entries, key)
	if !ok {
		return DescribeKeyResponse{}, fmt.Errorf("unknown key %q", args.Key)
	}

	resp := DescribeKeyResponse{Entry: entry}
	for _, e := range artifact.Entries {
		if e.IsAlias() && e.AliasFor.Compare(key) == 0 {
			resp.Aliases = append(resp.Aliases, e.Key.String())
		}
	}
	return resp, nil
}

func (s *Server) registerResources() {
	// EXPOSE: specdoc://reference.md
	s.mcpServer.AddResource(mcp.NewResource(ReferenceURI, "Configuration Reference",
		mcp.WithMIMEType("text/markdown"),
	), s.readReference)

	// EXPOSE: specdoc://schema.json
	s.mcpServer.AddResource(mcp.NewResource(JSONSchemaURI, "Configuration JSON Schema",
		mcp.WithMIMEType("application/schema+json"),
	), s.readJSONSchema)
}

func (s *Server) readReference(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	artifact, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ReferenceURI,
			MIMEType: "text/markdown",
			Text:     artifact.Markdown,
		},
	}, nil
}

func (s *Server) readJSONSchema(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	artifact, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      JSONSchemaURI,
			MIMEType: "application/schema+json",
			Text:     string(artifact.JSONSchema),
		},
	}, nil
}
