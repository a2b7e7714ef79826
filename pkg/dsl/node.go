package dsl

import "github.com/aretw0/specdoc/pkg/domain"

// NodeBuilder is implemented by every builder that can be placed under a key.
type NodeBuilder interface {
	Node() domain.Node
}

// ScalarBuilder declares a leaf value.
type ScalarBuilder struct {
	node *domain.Scalar
}

// Scalar declares a leaf accepting the given casts.
func Scalar(casts ...domain.Cast) *ScalarBuilder {
	return &ScalarBuilder{node: &domain.Scalar{Casts: casts}}
}

func Str() *ScalarBuilder    { return Scalar(domain.CastStr) }
func Int() *ScalarBuilder    { return Scalar(domain.CastInt) }
func Float() *ScalarBuilder  { return Scalar(domain.CastFloat) }
func Bool() *ScalarBuilder   { return Scalar(domain.CastBool) }
func Time() *ScalarBuilder   { return Scalar(domain.CastTime) }
func Binary() *ScalarBuilder { return Scalar(domain.CastBinary) }
func Null() *ScalarBuilder   { return Scalar(domain.CastNull) }

// Secure declares a value that may be given as a plain or an encrypted string.
func Secure() *ScalarBuilder {
	return Scalar(domain.CastStr, domain.CastSecure)
}

// As names the type for description lookups.
func (s *ScalarBuilder) As(tag string, ancestors ...string) *ScalarBuilder {
	s.node.TypeInfo = domain.TypeInfo{Name: tag, Ancestors: ancestors}
	return s
}

// DefaultCast sets the cast applied when a value carries no explicit one.
func (s *ScalarBuilder) DefaultCast(c domain.Cast) *ScalarBuilder {
	s.node.DefaultCast = c
	return s
}

func (s *ScalarBuilder) Node() domain.Node { return s.node }

// FixedBuilder declares a string restricted to an enumerated set.
type FixedBuilder struct {
	node *domain.FixedValue
}

// Fixed declares a value that must be one of values.
func Fixed(values ...string) *FixedBuilder {
	return &FixedBuilder{node: &domain.FixedValue{
		Scalar: domain.Scalar{Casts: []domain.Cast{domain.CastStr}},
		Values: values,
	}}
}

func (f *FixedBuilder) As(tag string, ancestors ...string) *FixedBuilder {
	f.node.TypeInfo = domain.TypeInfo{Name: tag, Ancestors: ancestors}
	return f
}

func (f *FixedBuilder) Default(value string) *FixedBuilder {
	f.node.Default = value
	return f
}

// IgnoreCase makes the setting case insensitive.
func (f *FixedBuilder) IgnoreCase() *FixedBuilder {
	f.node.IgnoreCase = true
	return f
}

// Alias accepts name as a synonym of value.
func (f *FixedBuilder) Alias(name, value string) *FixedBuilder {
	f.node.Aliases = append(f.node.Aliases, domain.Alias{Name: name, Target: value})
	return f
}

func (f *FixedBuilder) Node() domain.Node { return f.node }

// SeqBuilder declares a list, also accepting a single element.
type SeqBuilder struct {
	node *domain.Sequence
}

// Seq declares a list of elem.
func Seq(elem NodeBuilder) *SeqBuilder {
	return &SeqBuilder{node: &domain.Sequence{Elem: elem.Node()}}
}

func (s *SeqBuilder) As(tag string, ancestors ...string) *SeqBuilder {
	s.node.TypeInfo = domain.TypeInfo{Name: tag, Ancestors: ancestors}
	return s
}

func (s *SeqBuilder) Node() domain.Node { return s.node }
