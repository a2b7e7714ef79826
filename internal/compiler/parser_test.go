package compiler

import (
	"testing"

	"github.com/aretw0/specdoc/internal/runtime"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const travisYAML = `
name: travis
descriptions:
  tags:
    stage: Commands that will be run on the VM.
  keys:
    language: Language to use.
types:
  stage:
    kind: sequence
    of: str
root:
  fields:
    language:
      values: [ruby, python]
      default: ruby
      ignore_case: true
      value_aliases:
        py: python
    script: stage
    install: stage
    env:
      kind: open_mapping
      fields: {}
  required: [language]
  experimental: [env]
  aliases:
    lang: language
`

func TestParse_YAML(t *testing.T) {
	s, err := NewParser().Parse([]byte(travisYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "travis", s.Name)
	assert.Equal(t, []string{"env", "install", "language", "script"}, s.Root.Keys())
	assert.Equal(t, []domain.Alias{{Name: "lang", Target: "language"}}, s.Root.Aliases)

	script := s.Root.Fields["script"]
	require.IsType(t, &domain.Sequence{}, script)
	assert.Equal(t, "stage", script.Type().Name)
	assert.Same(t, script, s.Root.Fields["install"], "named types are shared")

	lang := s.Root.Fields["language"].(*domain.FixedValue)
	assert.Equal(t, "ruby", lang.Default)
	assert.True(t, lang.IgnoreCase)
	assert.Equal(t, []domain.Alias{{Name: "py", Target: "python"}}, lang.Aliases)

	assert.IsType(t, &domain.OpenMapping{}, s.Root.Fields["env"])
}

func TestParse_EndToEnd(t *testing.T) {
	s, err := NewParser().Parse([]byte(travisYAML), FormatYAML)
	require.NoError(t, err)

	entries := runtime.NewEngine(s.Descriptions).Spec(s.Root)

	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key.String())
	}
	assert.Equal(t, []string{"env", "install", "lang", "language", "script"}, keys)

	script := entries[4]
	assert.Equal(t, "Commands that will be run on the VM.", script.Description)
	assert.Equal(t, "list of strings; or a single string", script.Format)

	lang := entries[2]
	assert.True(t, lang.Required)
	assert.Equal(t, domain.Path{"language"}, lang.AliasFor)
	assert.True(t, entries[0].Experimental)
}

func TestParse_TOMLAndJSON(t *testing.T) {
	tomlDoc := `
name = "tiny"

[root]
required = ["foo"]

[root.fields]
foo = "int"
`
	jsonDoc := `{"name": "tiny", "root": {"fields": {"foo": "int"}, "required": ["foo"]}}`

	for format, data := range map[Format]string{FormatTOML: tomlDoc, FormatJSON: jsonDoc} {
		t.Run(string(format), func(t *testing.T) {
			s, err := NewParser().Parse([]byte(data), format)
			require.NoError(t, err)

			foo := s.Root.Fields["foo"].(*domain.Scalar)
			assert.Equal(t, []domain.Cast{domain.CastInt}, foo.Casts)
			assert.True(t, s.Root.IsRequired("foo"))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
		msg  string
	}{
		{
			name: "cyclic type",
			doc:  "types:\n  a: {kind: sequence, of: b}\n  b: {kind: sequence, of: a}\nroot:\n  fields:\n    x: a\n",
			want: domain.ErrCyclicSchema,
		},
		{
			name: "unknown type",
			doc:  "root:\n  fields:\n    x: ghost\n",
			want: domain.ErrUnknownType,
		},
		{
			name: "unknown kind",
			doc:  "root:\n  fields:\n    x: {kind: tuple}\n",
			want: domain.ErrUnknownKind,
		},
		{
			name: "type and kind",
			doc:  "types:\n  a: str\nroot:\n  fields:\n    x: {type: a, kind: scalar}\n",
			msg:  "mutually exclusive",
		},
		{
			name: "scalar root",
			doc:  "root: str\n",
			msg:  "must be a mapping",
		},
		{
			name: "missing root",
			doc:  "name: empty\n",
			msg:  "no root",
		},
		{
			name: "unknown key",
			doc:  "root:\n  fieldz: {}\n",
			msg:  "fieldz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse([]byte(tt.doc), FormatYAML)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("schema.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("schema.ini")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestDecodeDescriptions(t *testing.T) {
	table, err := DecodeDescriptions([]byte("tags:\n  stage: Build steps.\nkeys:\n  os: Target OS.\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"stage": "Build steps."}, table.Tags)
	assert.Equal(t, map[string]string{"os": "Target OS."}, table.Keys)

	_, err = DecodeDescriptions([]byte("stage: Build steps.\n"), FormatYAML)
	assert.ErrorContains(t, err, "invalid descriptions")
}

func TestMergeDescriptions(t *testing.T) {
	base := domain.DescriptionTable{
		Tags: map[string]string{"a": "A", "b": "B"},
		Keys: map[string]string{"a": "key A"},
	}
	merged, err := MergeDescriptions(base,
		domain.DescriptionTable{Tags: map[string]string{"b": "B2"}},
		domain.DescriptionTable{Tags: map[string]string{"c": "C"}, Keys: map[string]string{"b": "key B"}},
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a": "A", "b": "B2", "c": "C"}, merged.Tags)
	assert.Equal(t, map[string]string{"a": "key A", "b": "key B"}, merged.Keys)
	assert.Equal(t, "B", base.Tags["b"], "base is left untouched")
}

func TestParse_BooleanValues(t *testing.T) {
	doc := "root:\n  fields:\n    sudo: {values: [true, false], default: false}\n"
	s, err := NewParser().Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)

	sudo := s.Root.Fields["sudo"].(*domain.FixedValue)
	assert.Equal(t, []string{"true", "false"}, sudo.Values)
	assert.Equal(t, "false", sudo.Default)
	assert.Equal(t,
		"Value has to be `true` or `false` (default). Setting is case sensitive.",
		sudo.Describe(s.Descriptions, domain.Path{"sudo"}))
}
