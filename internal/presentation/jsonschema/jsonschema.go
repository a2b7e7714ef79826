// Package jsonschema exports schema trees as JSON Schema documents,
// built on the kin-openapi schema model.
package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

// Extension keys carried on properties.
const (
	ExtExperimental = "x-experimental"
	ExtAliasFor     = "x-alias-for"
	ExtIgnoreCase   = "x-ignore-case"
)

// Export converts the schema tree into a JSON Schema.
// Descriptions are resolved per path, so a shared type may carry different
// descriptions at different keys.
func Export(s *domain.Schema) (*openapi3.Schema, error) {
	if s == nil || s.Root == nil {
		return nil, fmt.Errorf("export: empty schema")
	}
	out := convert(s.Descriptions, s.Root, nil)
	out.Title = s.Name
	return out, nil
}

// Marshal exports the schema as indented JSON.
func Marshal(s *domain.Schema) ([]byte, error) {
	out, err := Export(s)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(out, "", "  ")
}

func convert(d *domain.Descriptions, n domain.Node, path domain.Path) *openapi3.Schema {
	var out *openapi3.Schema

	switch t := n.(type) {
	case *domain.FixedValue:
		out = openapi3.NewStringSchema()
		for _, v := range t.Values {
			out.Enum = append(out.Enum, v)
		}
		for _, a := range t.Aliases {
			out.Enum = append(out.Enum, a.Name)
		}
		if t.Default != "" {
			out.Default = t.Default
		}
		if t.IgnoreCase {
			setExtension(out, ExtIgnoreCase, true)
		}
	case *domain.Scalar:
		out = scalar(t)
	case *domain.Sequence:
		elem := convert(d, t.Elem, path.Append(domain.SequenceSegment))
		out = openapi3.NewOneOfSchema(openapi3.NewArraySchema().WithItems(elem), elem)
	case *domain.Mapping:
		out = object(d, t, path)
	case *domain.OpenMapping:
		out = object(d, &t.Mapping, path)
		if t.DefaultType != nil {
			out.WithAdditionalProperties(convert(d, t.DefaultType, path))
		} else {
			out.WithAnyAdditionalProperties()
		}
	case *domain.Root:
		out = object(d, &t.Mapping, path)
	default:
		out = &openapi3.Schema{}
	}

	out.Description = n.Describe(d, path)
	return out
}

func scalar(s *domain.Scalar) *openapi3.Schema {
	casts := s.Casts
	if len(casts) == 0 {
		def := s.DefaultCast
		if def == "" {
			def = domain.DefaultCast
		}
		casts = []domain.Cast{def}
	}
	if len(casts) == 1 {
		return castSchema(casts[0])
	}
	alternatives := make([]*openapi3.Schema, len(casts))
	for i, c := range casts {
		alternatives[i] = castSchema(c)
	}
	return openapi3.NewOneOfSchema(alternatives...)
}

func castSchema(c domain.Cast) *openapi3.Schema {
	switch c {
	case domain.CastBool:
		return openapi3.NewBoolSchema()
	case domain.CastInt:
		return openapi3.NewIntegerSchema()
	case domain.CastFloat:
		return openapi3.NewFloat64Schema()
	case domain.CastNull:
		return &openapi3.Schema{Type: &openapi3.Types{"null"}}
	case domain.CastTime:
		return openapi3.NewDateTimeSchema()
	case domain.CastBinary:
		return openapi3.NewStringSchema().WithFormat("binary")
	case domain.CastSecure:
		out := openapi3.NewStringSchema()
		out.Extensions = map[string]any{"x-secure": true}
		return out
	default:
		return openapi3.NewStringSchema()
	}
}

func object(d *domain.Descriptions, m *domain.Mapping, path domain.Path) *openapi3.Schema {
	out := openapi3.NewObjectSchema()

	for _, key := range m.Keys() {
		child := m.Fields[key]
		if child == nil {
			continue
		}
		prop := convert(d, child, path.Append(key))
		if m.IsExperimental(key) {
			setExtension(prop, ExtExperimental, true)
		}
		out.WithProperty(key, prop)
		if m.IsRequired(key) {
			out.Required = append(out.Required, key)
		}
	}

	for _, a := range m.Aliases {
		target, ok := m.Fields[a.Target]
		if !ok || target == nil {
			continue
		}
		prop := convert(d, target, path.Append(a.Target))
		setExtension(prop, ExtAliasFor, path.Append(a.Target).String())
		out.WithProperty(a.Name, prop)
	}
	return out
}

func setExtension(s *openapi3.Schema, key string, value any) {
	if s.Extensions == nil {
		s.Extensions = make(map[string]any)
	}
	s.Extensions[key] = value
}
