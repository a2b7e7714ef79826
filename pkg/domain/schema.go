package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// Schema is a complete, loaded schema definition.
type Schema struct {
	Name         string
	Root         *Root
	Descriptions *Descriptions
}

// Artifact bundles everything generated from one schema at one point in time.
type Artifact struct {
	Name        string          `json:"name"`
	Entries     []Entry         `json:"entries"`
	Markdown    string          `json:"markdown"`
	JSONSchema  json.RawMessage `json:"json_schema,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Clone returns a deep copy of the artifact.
func (a *Artifact) Clone() *Artifact {
	out := *a
	out.Entries = make([]Entry, len(a.Entries))
	for i, e := range a.Entries {
		e.Key = slices.Clone(e.Key)
		e.AliasFor = slices.Clone(e.AliasFor)
		out.Entries[i] = e
	}
	out.JSONSchema = slices.Clone(a.JSONSchema)
	return &out
}
