package compiler

import "github.com/aretw0/specdoc/pkg/domain"

// Document is the decoded form of a schema definition file.
//
//	name: travis
//	descriptions:
//	  tags:
//	    stage: Commands that will be run on the VM.
//	  keys:
//	    script: Main build commands.
//	types:
//	  stage: { kind: sequence, of: str }
//	root:
//	  fields:
//	    script: stage
//	  required: [script]
type Document struct {
	Name         string                  `mapstructure:"name"`
	Descriptions domain.DescriptionTable `mapstructure:"descriptions"`
	Types        map[string]*Definition  `mapstructure:"types"`
	Root         *Definition             `mapstructure:"root"`
}

// Definition describes a single node.
//
// A bare string in place of a definition is shorthand: a known cast name ("str",
// "int"...) stands for a scalar of that cast, anything else references a named type.
// When Kind is empty it is inferred from the other fields.
type Definition struct {
	Kind    string   `mapstructure:"kind"`
	Type    string   `mapstructure:"type"`
	Tag     string   `mapstructure:"tag"`
	Extends []string `mapstructure:"extends"`

	// Scalar
	Cast        []string `mapstructure:"cast"`
	DefaultCast string   `mapstructure:"default_cast"`

	// Fixed value
	Values       []string          `mapstructure:"values"`
	Default      string            `mapstructure:"default"`
	IgnoreCase   bool              `mapstructure:"ignore_case"`
	ValueAliases map[string]string `mapstructure:"value_aliases"`

	// Sequence
	Of *Definition `mapstructure:"of"`

	// Mapping
	Fields       map[string]*Definition `mapstructure:"fields"`
	Required     []string               `mapstructure:"required"`
	Experimental []string               `mapstructure:"experimental"`
	Aliases      map[string]string      `mapstructure:"aliases"`
	DefaultType  *Definition            `mapstructure:"default_type"`
}

// Accepted values of Definition.Kind.
const (
	KindScalar      = "scalar"
	KindFixed       = "fixed"
	KindSequence    = "sequence"
	KindMapping     = "mapping"
	KindOpenMapping = "open_mapping"
)

func (d *Definition) inferKind() string {
	switch {
	case d.Kind != "":
		return d.Kind
	case d.DefaultType != nil:
		return KindOpenMapping
	case d.Fields != nil:
		return KindMapping
	case d.Of != nil:
		return KindSequence
	case len(d.Values) > 0:
		return KindFixed
	default:
		return KindScalar
	}
}
