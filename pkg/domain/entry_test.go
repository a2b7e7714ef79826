package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOr(t *testing.T) {
	assert.Equal(t, "", JoinOr(nil))
	assert.Equal(t, "a", JoinOr([]string{"a"}))
	assert.Equal(t, "a or b", JoinOr([]string{"a", "b"}))
	assert.Equal(t, "a, b or c", JoinOr([]string{"a", "b", "c"}))
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "", Path{}.String())
	assert.Equal(t, "build.os", Path{"build", "os"}.String())
	assert.Equal(t, "matrix[].os", Path{"matrix", "[]", "os"}.String())
	assert.Equal(t, "items[][]", Path{"items", "[]", "[]"}.String())
}

func TestParsePath_RoundTrip(t *testing.T) {
	for _, p := range []Path{
		{"build"},
		{"build", "os"},
		{"matrix", "[]", "os"},
		{"items", "[]", "[]", "name"},
	} {
		assert.Equal(t, p, ParsePath(p.String()))
	}
	assert.Equal(t, Path{}, ParsePath(""))
}

func TestPath_AppendDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = "a"
	x := base.Append("x")
	y := base.Append("y")

	assert.Equal(t, Path{"a", "x"}, x)
	assert.Equal(t, Path{"a", "y"}, y)
	assert.Equal(t, Path{"a"}, base)
}

func TestSortEntries(t *testing.T) {
	entries := []Entry{
		{Key: Path{"build", "script"}},
		{Key: Path{"build"}},
		{Key: Path{"addons", "x"}},
		{Key: Path{"build", "os"}},
	}
	SortEntries(entries)

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key.String()
	}
	assert.Equal(t, []string{"addons.x", "build", "build.os", "build.script"}, keys)
}

func TestFindAndFilterEntries(t *testing.T) {
	entries := []Entry{
		{Key: Path{"build"}},
		{Key: Path{"build", "os"}, Format: "string"},
		{Key: Path{"deploy"}},
		{Key: Path{"b"}, AliasFor: Path{"build"}},
	}

	e, ok := FindEntry(entries, Path{"build", "os"})
	assert.True(t, ok)
	assert.Equal(t, "string", e.Format)

	_, ok = FindEntry(entries, Path{"nope"})
	assert.False(t, ok)

	assert.Len(t, FilterEntries(entries, Path{"build"}), 2)
	assert.Len(t, FilterEntries(entries, nil), 4)
	assert.True(t, entries[3].IsAlias())
	assert.False(t, entries[0].IsAlias())
}

func TestDescriptions_Immutable(t *testing.T) {
	src := map[string]string{"a": "A", "empty": ""}
	d := NewDescriptions(DescriptionTable{Tags: src, Keys: map[string]string{"b": "B"}})
	src["a"] = "changed"

	assert.Equal(t, "A", d.Lookup(nil, "a"))
	assert.Equal(t, "B", d.Lookup(Path{"b"}))
	assert.Equal(t, 2, d.Len())

	copied := d.Table()
	copied.Tags["a"] = "mutated"
	assert.Equal(t, "A", d.Lookup(nil, "a"))

	var nilTable *Descriptions
	assert.Equal(t, 0, nilTable.Len())
	assert.Empty(t, nilTable.Lookup(Path{"a"}, "a"))
}
