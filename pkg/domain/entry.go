package domain

import (
	"slices"
	"strings"
)

// Path identifies a position in a schema tree.
// Segments are field names or SequenceSegment.
type Path []string

// Append returns a new path with segs added. The receiver is never modified.
func (p Path) Append(segs ...string) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// String renders the path in dotted form with sequence markers attached to
// their parent: ["matrix", "[]", "os"] becomes "matrix[].os".
func (p Path) String() string {
	return strings.ReplaceAll(strings.Join(p, "."), "."+SequenceSegment, SequenceSegment)
}

// Compare orders paths lexicographically segment by segment.
func (p Path) Compare(other Path) int {
	return slices.Compare(p, other)
}

// HasPrefix reports whether p starts with every segment of prefix.
func (p Path) HasPrefix(prefix Path) bool {
	return len(p) >= len(prefix) && slices.Equal(p[:len(prefix)], prefix)
}

// ParsePath is the inverse of Path.String.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	var p Path
	for _, part := range strings.Split(s, ".") {
		var markers int
		for strings.HasSuffix(part, SequenceSegment) {
			part = strings.TrimSuffix(part, SequenceSegment)
			markers++
		}
		if part != "" {
			p = append(p, part)
		}
		for ; markers > 0; markers-- {
			p = append(p, SequenceSegment)
		}
	}
	return p
}

// Entry is one documentation record produced by a traversal.
// Entries are plain values; nothing retains them between traversals.
type Entry struct {
	Key          Path   `json:"key" yaml:"key"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Format       string `json:"format,omitempty" yaml:"format,omitempty"`
	Required     bool   `json:"required" yaml:"required"`
	Experimental bool   `json:"experimental" yaml:"experimental"`
	AliasFor     Path   `json:"alias_for,omitempty" yaml:"alias_for,omitempty"`
}

// IsAlias reports whether the entry documents an alias rather than a real key.
func (e Entry) IsAlias() bool {
	return e.AliasFor != nil
}

// SortEntries orders entries by key, keeping the relative order of equal keys.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Key.Compare(b.Key)
	})
}

// FindEntry returns the first entry whose key equals key.
func FindEntry(entries []Entry, key Path) (Entry, bool) {
	for _, e := range entries {
		if slices.Equal(e.Key, key) {
			return e, true
		}
	}
	return Entry{}, false
}

// FilterEntries returns the entries whose key starts with prefix.
func FilterEntries(entries []Entry, prefix Path) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Key.HasPrefix(prefix) {
			out = append(out, e)
		}
	}
	return out
}
