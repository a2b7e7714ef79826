package compiler

import (
	"fmt"
	"maps"
	"sort"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/imdario/mergo"
)

// Parser turns schema definition documents into domain trees.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes and compiles a schema definition in one step.
func (p *Parser) Parse(data []byte, format Format) (*domain.Schema, error) {
	doc, err := DecodeDocument(data, format)
	if err != nil {
		return nil, err
	}
	return p.Compile(doc)
}

// Compile resolves named types and builds the node tree of doc.
// Each named type is built once and shared by every reference to it.
func (p *Parser) Compile(doc *Document) (*domain.Schema, error) {
	if doc.Root == nil {
		return nil, fmt.Errorf("schema %q has no root", doc.Name)
	}

	c := &compilation{
		types:     doc.Types,
		resolved:  make(map[string]domain.Node),
		resolving: make(map[string]bool),
	}

	n, err := c.node(doc.Root, "root", "")
	if err != nil {
		return nil, err
	}
	m, ok := n.(*domain.Mapping)
	if !ok {
		return nil, fmt.Errorf("root: must be a mapping, got %s", n.Kind())
	}

	return &domain.Schema{
		Name:         doc.Name,
		Root:         &domain.Root{Mapping: *m},
		Descriptions: domain.NewDescriptions(doc.Descriptions),
	}, nil
}

type compilation struct {
	types     map[string]*Definition
	resolved  map[string]domain.Node
	resolving map[string]bool
}

func (c *compilation) named(name, where string) (domain.Node, error) {
	if n, ok := c.resolved[name]; ok {
		return n, nil
	}
	if c.resolving[name] {
		return nil, fmt.Errorf("%s: %w: type %q refers to itself", where, domain.ErrCyclicSchema, name)
	}
	def, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", where, domain.ErrUnknownType, name)
	}

	c.resolving[name] = true
	defer delete(c.resolving, name)

	n, err := c.node(def, "types."+name, name)
	if err != nil {
		return nil, err
	}
	c.resolved[name] = n
	return n, nil
}

func (c *compilation) node(def *Definition, where, tag string) (domain.Node, error) {
	if def == nil {
		return nil, fmt.Errorf("%s: missing definition", where)
	}
	if def.Type != "" {
		if def.Kind != "" {
			return nil, fmt.Errorf("%s: type and kind are mutually exclusive", where)
		}
		return c.named(def.Type, where)
	}

	if def.Tag != "" {
		tag = def.Tag
	}
	info := domain.TypeInfo{Name: tag, Ancestors: def.Extends}

	switch kind := def.inferKind(); kind {
	case KindScalar:
		return &domain.Scalar{TypeInfo: info, Casts: casts(def.Cast), DefaultCast: domain.Cast(def.DefaultCast)}, nil

	case KindFixed:
		return &domain.FixedValue{
			Scalar:     domain.Scalar{TypeInfo: info, Casts: casts(def.Cast), DefaultCast: domain.Cast(def.DefaultCast)},
			Values:     def.Values,
			Default:    def.Default,
			IgnoreCase: def.IgnoreCase,
			Aliases:    aliases(def.ValueAliases),
		}, nil

	case KindSequence:
		elem, err := c.node(def.Of, where+"[]", "")
		if err != nil {
			return nil, err
		}
		return &domain.Sequence{TypeInfo: info, Elem: elem}, nil

	case KindMapping, KindOpenMapping:
		m, err := c.mapping(def, where, info)
		if err != nil {
			return nil, err
		}
		if kind == KindMapping {
			return m, nil
		}
		open := &domain.OpenMapping{Mapping: *m}
		if def.DefaultType != nil {
			if open.DefaultType, err = c.node(def.DefaultType, where+".*", ""); err != nil {
				return nil, err
			}
		}
		return open, nil

	default:
		return nil, fmt.Errorf("%s: %w %q", where, domain.ErrUnknownKind, kind)
	}
}

func (c *compilation) mapping(def *Definition, where string, info domain.TypeInfo) (*domain.Mapping, error) {
	m := &domain.Mapping{
		TypeInfo:     info,
		Fields:       make(map[string]domain.Node, len(def.Fields)),
		Required:     def.Required,
		Experimental: def.Experimental,
		Aliases:      aliases(def.Aliases),
	}
	for key, child := range def.Fields {
		n, err := c.node(child, where+"."+key, "")
		if err != nil {
			return nil, err
		}
		m.Fields[key] = n
	}
	return m, nil
}

func casts(names []string) []domain.Cast {
	if len(names) == 0 {
		return nil
	}
	out := make([]domain.Cast, len(names))
	for i, n := range names {
		out[i] = domain.Cast(n)
	}
	return out
}

// aliases flattens an alias map in key order.
func aliases(m map[string]string) []domain.Alias {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]domain.Alias, len(names))
	for i, name := range names {
		out[i] = domain.Alias{Name: name, Target: m[name]}
	}
	return out
}

// MergeDescriptions layers overrides on top of base, later tables winning.
// Tags and keys are merged separately. None of the inputs is modified.
func MergeDescriptions(base domain.DescriptionTable, overrides ...domain.DescriptionTable) (domain.DescriptionTable, error) {
	merged := domain.DescriptionTable{
		Tags: make(map[string]string, len(base.Tags)),
		Keys: make(map[string]string, len(base.Keys)),
	}
	maps.Copy(merged.Tags, base.Tags)
	maps.Copy(merged.Keys, base.Keys)
	for _, o := range overrides {
		if err := mergo.Merge(&merged, o, mergo.WithOverride); err != nil {
			return domain.DescriptionTable{}, fmt.Errorf("merge descriptions: %w", err)
		}
	}
	return merged, nil
}
