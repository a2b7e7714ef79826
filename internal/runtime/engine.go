package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/specdoc/pkg/domain"
)

// Options carries the flags a node's own entry inherits from its parent.
type Options struct {
	Required     bool
	Experimental bool
}

// Engine walks schema trees and turns them into documentation entries.
// It holds no per-walk state and is safe for concurrent use.
type Engine struct {
	descriptions *domain.Descriptions
	logger       *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine resolving descriptions from the given table.
func NewEngine(descriptions *domain.Descriptions, opts ...EngineOption) *Engine {
	e := &Engine{
		descriptions: descriptions,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Spec returns the sorted entries of a whole schema.
func (e *Engine) Spec(root *domain.Root) []domain.Entry {
	entries := Walk(e.descriptions, root, nil, Options{})
	e.logger.Debug("schema traversed", "entries", len(entries))
	return entries
}

// Walk produces the entries for n and everything below it.
//
// The first entry always describes n itself at prefix. A Root discards that entry and
// returns the rest sorted by key. The tree must be acyclic.
func Walk(d *domain.Descriptions, n domain.Node, prefix domain.Path, opts Options) []domain.Entry {
	entries := []domain.Entry{{
		Key:          prefix,
		Description:  n.Describe(d, prefix),
		Format:       n.FormatLabel(""),
		Required:     opts.Required,
		Experimental: opts.Experimental,
	}}

	switch v := n.(type) {
	case *domain.Scalar, *domain.FixedValue:
	case *domain.Sequence:
		if v.Elem != nil && !domain.IsScalar(v.Elem) {
			entries = append(entries, Walk(d, v.Elem, prefix.Append(domain.SequenceSegment), opts)...)
		}
	case *domain.Mapping:
		entries = walkMapping(d, v, prefix, entries)
	case *domain.OpenMapping:
		// DefaultType has no entry of its own; only declared keys are documented.
		entries = walkMapping(d, &v.Mapping, prefix, entries)
	case *domain.Root:
		entries = walkMapping(d, &v.Mapping, prefix, entries)[1:]
		domain.SortEntries(entries)
	}
	return entries
}

func walkMapping(d *domain.Descriptions, m *domain.Mapping, prefix domain.Path, entries []domain.Entry) []domain.Entry {
	for _, key := range m.Keys() {
		child := m.Fields[key]
		if child == nil {
			continue
		}
		entries = append(entries, Walk(d, child, prefix.Append(key), optionsFor(m, key))...)
	}

	for _, alias := range m.Aliases {
		opts := optionsFor(m, alias.Target)
		entries = append(entries, domain.Entry{
			Key:          prefix.Append(alias.Name),
			AliasFor:     prefix.Append(alias.Target),
			Required:     opts.Required,
			Experimental: opts.Experimental,
		})
	}
	return entries
}

func optionsFor(m *domain.Mapping, key string) Options {
	return Options{
		Required:     m.IsRequired(key),
		Experimental: m.IsExperimental(key),
	}
}
