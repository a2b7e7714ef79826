package dsl

import (
	"fmt"

	"github.com/aretw0/specdoc/internal/validator"
	"github.com/aretw0/specdoc/pkg/adapters/memory"
	"github.com/aretw0/specdoc/pkg/domain"
)

// Builder manages the schema construction.
type Builder struct {
	name         string
	root         *MapBuilder
	descriptions domain.DescriptionTable
}

// New creates a new schema builder.
func New(name string) *Builder {
	return &Builder{
		name:         name,
		root:         Map(),
		descriptions: domain.DescriptionTable{
			Tags: make(map[string]string),
			Keys: make(map[string]string),
		},
	}
}

// Root returns the builder of the top-level mapping.
func (b *Builder) Root() *MapBuilder {
	return b.root
}

// Describe registers a description for every node tagged tag.
func (b *Builder) Describe(tag, text string) *Builder {
	b.descriptions.Tags[tag] = text
	return b
}

// DescribeKey registers a description for the node at a dotted key such as "matrix.include".
func (b *Builder) DescribeKey(key, text string) *Builder {
	b.descriptions.Keys[key] = text
	return b
}

// Schema validates and returns the constructed schema.
func (b *Builder) Schema() (*domain.Schema, error) {
	root := &domain.Root{Mapping: *b.root.node}
	if err := validator.ValidateSchema(root); err != nil {
		return nil, fmt.Errorf("invalid schema %q: %w", b.name, err)
	}
	return &domain.Schema{
		Name:         b.name,
		Root:         root,
		Descriptions: domain.NewDescriptions(b.descriptions),
	}, nil
}

// Build compiles the schema into a MemoryLoader.
func (b *Builder) Build() (*memory.Loader, error) {
	schema, err := b.Schema()
	if err != nil {
		return nil, err
	}
	return memory.NewLoader(schema), nil
}

// MapBuilder declares a mapping with known keys.
type MapBuilder struct {
	node *domain.Mapping
	open *domain.OpenMapping
}

// Map declares a mapping.
func Map() *MapBuilder {
	return &MapBuilder{node: &domain.Mapping{Fields: make(map[string]domain.Node)}}
}

// OpenMap declares a mapping that also accepts arbitrary keys of type def.
// The arbitrary keys are not documented.
func OpenMap(def NodeBuilder) *MapBuilder {
	open := &domain.OpenMapping{Mapping: domain.Mapping{Fields: make(map[string]domain.Node)}}
	if def != nil {
		open.DefaultType = def.Node()
	}
	return &MapBuilder{node: &open.Mapping, open: open}
}

func (m *MapBuilder) As(tag string, ancestors ...string) *MapBuilder {
	m.node.TypeInfo = domain.TypeInfo{Name: tag, Ancestors: ancestors}
	return m
}

// Field declares key with the given type.
func (m *MapBuilder) Field(key string, def NodeBuilder) *MapBuilder {
	m.node.Fields[key] = def.Node()
	return m
}

// Required marks keys as required.
func (m *MapBuilder) Required(keys ...string) *MapBuilder {
	m.node.Required = append(m.node.Required, keys...)
	return m
}

// Experimental marks keys as experimental.
func (m *MapBuilder) Experimental(keys ...string) *MapBuilder {
	m.node.Experimental = append(m.node.Experimental, keys...)
	return m
}

// Alias declares name as an alternate spelling of key.
func (m *MapBuilder) Alias(name, key string) *MapBuilder {
	m.node.Aliases = append(m.node.Aliases, domain.Alias{Name: name, Target: key})
	return m
}

func (m *MapBuilder) Node() domain.Node {
	if m.open != nil {
		return m.open
	}
	return m.node
}
