package specdoc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/specdoc/internal/compiler"
	"github.com/aretw0/specdoc/internal/presentation/graph"
	"github.com/aretw0/specdoc/internal/presentation/jsonschema"
	"github.com/aretw0/specdoc/internal/presentation/markdown"
	"github.com/aretw0/specdoc/internal/runtime"
	"github.com/aretw0/specdoc/pkg/adapters/file"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/aretw0/specdoc/pkg/ports"
	"github.com/imdario/mergo"
)

// Options carries the required/experimental flags a node's own entry inherits.
type Options = runtime.Options

// DescriptionTable holds descriptions by type tag and by dotted key.
type DescriptionTable = domain.DescriptionTable

// Document holds the prose around the generated list of options.
type Document = markdown.Document

// Walk produces the entries of node and everything below it, keyed under prefix.
func Walk(d *domain.Descriptions, node domain.Node, prefix domain.Path, opts Options) []domain.Entry {
	return runtime.Walk(d, node, prefix, opts)
}

// Spec returns the sorted entries of a whole schema.
func Spec(schema *domain.Schema) []domain.Entry {
	return runtime.NewEngine(schema.Descriptions).Spec(schema.Root)
}

// Generator is the high-level entry point for the specdoc library.
// It loads a schema through a SchemaLoader and renders its reference in several formats.
type Generator struct {
	loader       ports.SchemaLoader
	descriptions []DescriptionTable
	document     *Document
	overrides    *Document
	logger       *slog.Logger
	Name         string
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLoader injects a custom SchemaLoader, bypassing the default file loader.
func WithLoader(l ports.SchemaLoader) Option {
	return func(g *Generator) {
		g.loader = l
	}
}

// WithLogger sets a custom structured logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithDescriptions layers a description table over the schema's own. Later tables win.
func WithDescriptions(table DescriptionTable) Option {
	return func(g *Generator) {
		g.descriptions = append(g.descriptions, table)
	}
}

// WithDocument replaces the prose of the markdown reference.
func WithDocument(doc Document) Option {
	return func(g *Generator) {
		g.document = &doc
	}
}

// WithDocumentOverrides keeps the default prose but replaces each non-empty field of doc.
func WithDocumentOverrides(doc Document) Option {
	return func(g *Generator) {
		g.overrides = &doc
	}
}

// New initializes a new Generator.
// By default, it compiles the schema definition file at schemaPath on every load.
// If WithLoader option is provided, schemaPath can be empty.
func New(schemaPath string, opts ...Option) (*Generator, error) {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if g.loader == nil {
		if schemaPath == "" {
			return nil, fmt.Errorf("schemaPath is required when no custom loader is provided")
		}
		if _, err := compiler.FormatFromPath(schemaPath); err != nil {
			return nil, err
		}
		g.loader = file.New(schemaPath, file.WithLogger(g.logger))
	}
	if schemaPath != "" {
		g.Name = strings.TrimSuffix(filepath.Base(schemaPath), filepath.Ext(schemaPath))
	}
	if g.Name != "" {
		g.logger = g.logger.With("schema", g.Name)
	}

	return g, nil
}

// Schema loads the schema and applies description overrides.
func (g *Generator) Schema(ctx context.Context) (*domain.Schema, error) {
	schema, err := g.loader.LoadSchema(ctx)
	if err != nil {
		return nil, err
	}
	if len(g.descriptions) == 0 {
		return schema, nil
	}

	merged, err := compiler.MergeDescriptions(schema.Descriptions.Table(), g.descriptions...)
	if err != nil {
		return nil, err
	}
	out := *schema
	out.Descriptions = domain.NewDescriptions(merged)
	return &out, nil
}

// Entries returns the sorted documentation entries of the current schema.
func (g *Generator) Entries(ctx context.Context) ([]domain.Entry, error) {
	schema, err := g.Schema(ctx)
	if err != nil {
		return nil, err
	}
	return g.entries(schema), nil
}

func (g *Generator) entries(schema *domain.Schema) []domain.Entry {
	return runtime.NewEngine(schema.Descriptions, runtime.WithLogger(g.logger)).Spec(schema.Root)
}

func (g *Generator) documentFor(schema *domain.Schema) Document {
	if g.document != nil {
		return *g.document
	}
	doc := markdown.DefaultDocument(g.schemaName(schema))
	if g.overrides != nil {
		if err := mergo.Merge(&doc, *g.overrides, mergo.WithOverride); err != nil {
			g.logger.Warn("ignoring document overrides", "error", err)
		}
	}
	return doc
}

func (g *Generator) schemaName(schema *domain.Schema) string {
	if schema.Name != "" {
		return schema.Name
	}
	if g.Name != "" {
		return g.Name
	}
	return "schema"
}

// Markdown renders the reference document.
func (g *Generator) Markdown(ctx context.Context) (string, error) {
	schema, err := g.Schema(ctx)
	if err != nil {
		return "", err
	}
	return markdown.Render(g.entries(schema), g.documentFor(schema)), nil
}

// JSONSchema exports the schema as an indented JSON Schema document.
func (g *Generator) JSONSchema(ctx context.Context) ([]byte, error) {
	schema, err := g.Schema(ctx)
	if err != nil {
		return nil, err
	}
	return jsonschema.Marshal(schema)
}

// Mermaid renders the key hierarchy as a Mermaid flowchart.
func (g *Generator) Mermaid(ctx context.Context) (string, error) {
	schema, err := g.Schema(ctx)
	if err != nil {
		return "", err
	}
	return graph.GenerateMermaid(g.schemaName(schema), g.entries(schema)), nil
}

// Artifact generates every output from a single load of the schema.
func (g *Generator) Artifact(ctx context.Context) (*domain.Artifact, error) {
	schema, err := g.Schema(ctx)
	if err != nil {
		return nil, err
	}
	entries := g.entries(schema)
	js, err := jsonschema.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("export json schema: %w", err)
	}
	return &domain.Artifact{
		Name:        g.schemaName(schema),
		Entries:     entries,
		Markdown:    markdown.Render(entries, g.documentFor(schema)),
		JSONSchema:  js,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Watch returns a channel that signals when the underlying schema changes.
// Returns error if the loader does not support watching.
func (g *Generator) Watch(ctx context.Context) (<-chan struct{}, error) {
	if w, ok := g.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current loader does not support watching")
}

// Loader returns the underlying SchemaLoader used by the generator.
func (g *Generator) Loader() ports.SchemaLoader {
	return g.loader
}
