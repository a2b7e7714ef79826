package domain

import "maps"

// DescriptionTable is the editable form of Descriptions, as found in definition
// and override files. Tags and Keys are separate key spaces, so a field named like
// a type never picks up that type's description.
//
//	tags:
//	  stage: Commands that will be run on the VM.
//	keys:
//	  matrix.include: Extra jobs added to the matrix.
type DescriptionTable struct {
	// Tags maps type and kind tags to text.
	Tags map[string]string `mapstructure:"tags" json:"tags,omitempty" yaml:"tags,omitempty"`
	// Keys maps dotted paths, as rendered by Path.String, to text.
	Keys map[string]string `mapstructure:"keys" json:"keys,omitempty" yaml:"keys,omitempty"`
}

// Descriptions is an immutable table of human-readable descriptions.
//
// A lookup tries the exact path among the keys first, then each tag of the node's
// chain in order. The zero value and a nil pointer are both valid empty tables.
type Descriptions struct {
	tags map[string]string
	keys map[string]string
}

// NewDescriptions copies table into a new Descriptions. Empty texts are dropped.
func NewDescriptions(table DescriptionTable) *Descriptions {
	return &Descriptions{
		tags: nonEmpty(table.Tags),
		keys: nonEmpty(table.Keys),
	}
}

func nonEmpty(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Lookup returns the description registered for path or, failing that, for the
// first tag in chain that has one. It returns "" when nothing matches.
func (d *Descriptions) Lookup(path Path, chain ...string) string {
	if d == nil {
		return ""
	}
	if len(path) > 0 {
		if v := d.keys[path.String()]; v != "" {
			return v
		}
	}
	for _, tag := range chain {
		if tag == "" {
			continue
		}
		if v := d.tags[tag]; v != "" {
			return v
		}
	}
	return ""
}

// Len returns the number of descriptions in both key spaces.
func (d *Descriptions) Len() int {
	if d == nil {
		return 0
	}
	return len(d.tags) + len(d.keys)
}

// Table returns a copy of the underlying tables.
func (d *Descriptions) Table() DescriptionTable {
	if d == nil {
		return DescriptionTable{Tags: map[string]string{}, Keys: map[string]string{}}
	}
	return DescriptionTable{Tags: maps.Clone(d.tags), Keys: maps.Clone(d.keys)}
}
