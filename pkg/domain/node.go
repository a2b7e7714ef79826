package domain

import (
	"slices"
	"sort"
)

// Kind identifies a node variant.
type Kind int

const (
	KindScalar Kind = iota
	KindFixedValue
	KindSequence
	KindMapping
	KindOpenMapping
	KindRoot
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return TagScalar
	case KindFixedValue:
		return TagFixedValue
	case KindSequence:
		return TagSequence
	case KindMapping:
		return TagMapping
	case KindOpenMapping:
		return TagOpenMapping
	case KindRoot:
		return TagRoot
	default:
		return "unknown"
	}
}

// Node is one element of a schema tree.
// The set of implementations is closed: Scalar, FixedValue, Sequence, Mapping,
// OpenMapping and Root.
type Node interface {
	Kind() Kind
	// Type returns the identity used for description lookups.
	Type() TypeInfo
	// Describe returns the human description of the node at path, or "".
	Describe(d *Descriptions, path Path) string
	// FormatLabel describes the accepted values, or returns "".
	// suffix is appended to each known label (used to pluralize).
	FormatLabel(suffix string) string

	node()
}

// TypeInfo names the declaring type of a node.
// Ancestors are tried in order after Name when looking up descriptions.
type TypeInfo struct {
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Ancestors []string `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`
}

// Type returns t itself, so every node embedding TypeInfo satisfies Node.Type.
func (t TypeInfo) Type() TypeInfo { return t }

func (t TypeInfo) chain(kindTags ...string) []string {
	out := make([]string, 0, 1+len(t.Ancestors)+len(kindTags))
	out = append(out, t.Name)
	out = append(out, t.Ancestors...)
	return append(out, kindTags...)
}

// Alias maps an alternate name onto a canonical one.
type Alias struct {
	Name   string `json:"name" yaml:"name"`
	Target string `json:"target" yaml:"target"`
}

// Scalar is a leaf accepting one or more primitive casts.
type Scalar struct {
	TypeInfo
	Casts []Cast
	// DefaultCast is shown when Casts is empty. Zero means the package DefaultCast.
	DefaultCast Cast
}

func (*Scalar) node() {}

func (s *Scalar) Kind() Kind { return KindScalar }

func (s *Scalar) Describe(d *Descriptions, path Path) string {
	return d.Lookup(path, s.chain(TagScalar, TagNode)...)
}

func (s *Scalar) FormatLabel(suffix string) string {
	casts := s.Casts
	if len(casts) == 0 {
		def := s.DefaultCast
		if def == "" {
			def = DefaultCast
		}
		casts = []Cast{def}
	}
	labels := make([]string, len(casts))
	for i, c := range casts {
		labels[i] = c.Label(suffix)
	}
	return JoinOr(labels)
}

// FixedValue is a scalar restricted to an enumerated set of values.
type FixedValue struct {
	Scalar
	Values     []string
	Default    string
	IgnoreCase bool
	Aliases    []Alias
}

func (*FixedValue) node() {}

func (f *FixedValue) Kind() Kind { return KindFixedValue }

// Describe falls back to a sentence listing the valid values when the table has nothing.
func (f *FixedValue) Describe(d *Descriptions, path Path) string {
	if v := d.Lookup(path, f.chain(TagFixedValue, TagScalar, TagNode)...); v != "" {
		return v
	}

	values := make([]string, len(f.Values))
	for i, v := range f.Values {
		values[i] = "`" + v + "`"
		if f.Default != "" && v == f.Default {
			values[i] += " (default)"
		}
	}
	text := "Value has to be " + JoinOr(values)

	if len(f.Aliases) > 0 {
		aliases := make([]string, len(f.Aliases))
		for i, a := range f.Aliases {
			aliases[i] = "`" + a.Name + "` for `" + a.Target + "`"
		}
		text += "; or one of the known aliases: " + JoinOr(aliases)
	}

	text += ". Setting is"
	if f.IgnoreCase {
		text += " not"
	}
	return text + " case sensitive."
}

// Sequence is a list of a single element type.
type Sequence struct {
	TypeInfo
	Elem Node
}

func (*Sequence) node() {}

func (s *Sequence) Kind() Kind { return KindSequence }

func (s *Sequence) Describe(d *Descriptions, path Path) string {
	return d.Lookup(path, s.chain(TagSequence, TagNode)...)
}

// FormatLabel ignores suffix: a list has no plural form of its own.
func (s *Sequence) FormatLabel(string) string {
	if s.Elem == nil {
		return ""
	}
	single := s.Elem.FormatLabel("")
	if single == "" {
		return ""
	}
	return "list of " + s.Elem.FormatLabel("s") + "; or a single " + single
}

// Mapping is a set of named child nodes.
type Mapping struct {
	TypeInfo
	Fields       map[string]Node
	Required     []string
	Experimental []string
	Aliases      []Alias
}

func (*Mapping) node() {}

func (m *Mapping) Kind() Kind { return KindMapping }

func (m *Mapping) Describe(d *Descriptions, path Path) string {
	return d.Lookup(path, m.chain(TagMapping, TagNode)...)
}

func (m *Mapping) FormatLabel(suffix string) string {
	return MappingFormat + suffix
}

// Keys returns the declared keys in lexicographic order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Mapping) IsRequired(key string) bool {
	return slices.Contains(m.Required, key)
}

func (m *Mapping) IsExperimental(key string) bool {
	return slices.Contains(m.Experimental, key)
}

// OpenMapping is a mapping that also accepts undeclared keys of DefaultType.
type OpenMapping struct {
	Mapping
	DefaultType Node
}

func (*OpenMapping) node() {}

func (m *OpenMapping) Kind() Kind { return KindOpenMapping }

func (m *OpenMapping) Describe(d *Descriptions, path Path) string {
	return d.Lookup(path, m.chain(TagOpenMapping, TagMapping, TagNode)...)
}

// Root is the unkeyed top of a schema tree.
type Root struct {
	Mapping
}

func (*Root) node() {}

func (r *Root) Kind() Kind { return KindRoot }

func (r *Root) Describe(d *Descriptions, path Path) string {
	return d.Lookup(path, r.chain(TagRoot, TagMapping, TagNode)...)
}

// AsMapping returns the mapping part of Mapping, OpenMapping and Root nodes.
func AsMapping(n Node) (*Mapping, bool) {
	switch v := n.(type) {
	case *Mapping:
		return v, true
	case *OpenMapping:
		return &v.Mapping, true
	case *Root:
		return &v.Mapping, true
	default:
		return nil, false
	}
}

// IsScalar reports whether n is a leaf (Scalar or FixedValue).
func IsScalar(n Node) bool {
	switch n.(type) {
	case *Scalar, *FixedValue:
		return true
	default:
		return false
	}
}
