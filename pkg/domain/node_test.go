package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar_FormatLabel(t *testing.T) {
	tests := []struct {
		name   string
		node   *Scalar
		suffix string
		want   string
	}{
		{"no casts uses default", &Scalar{}, "", "string"},
		{"no casts pluralized", &Scalar{}, "s", "strings"},
		{"declared default cast", &Scalar{DefaultCast: CastInt}, "", "integer value"},
		{"single cast", &Scalar{Casts: []Cast{CastBool}}, "", "boolean value"},
		{"two casts", &Scalar{Casts: []Cast{CastStr, CastSecure}}, "", "string or encrypted string"},
		{"three casts", &Scalar{Casts: []Cast{CastInt, CastFloat, CastNull}}, "", "integer value, float value or null value"},
		{"pluralized casts", &Scalar{Casts: []Cast{CastStr, CastSecure}}, "s", "strings or encrypted strings"},
		{"custom cast passes through", &Scalar{Casts: []Cast{CastStr, "regexp"}}, "s", "strings or regexp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.FormatLabel(tt.suffix))
		})
	}
}

func TestScalar_FormatLabel_EveryCastListed(t *testing.T) {
	casts := Casts()
	label := (&Scalar{Casts: casts}).FormatLabel("")

	for _, c := range casts {
		assert.Contains(t, label, c.Label(""))
	}
	assert.Equal(t, len(casts)-2, strings.Count(label, ", "))
	assert.True(t, strings.HasSuffix(label, " or "+casts[len(casts)-1].Label("")))
}

func TestFixedValue_Describe(t *testing.T) {
	t.Run("default and case sensitivity", func(t *testing.T) {
		f := &FixedValue{Values: []string{"linux", "osx"}, Default: "linux"}
		assert.Equal(t,
			"Value has to be `linux` (default) or `osx`. Setting is case sensitive.",
			f.Describe(nil, Path{"os"}))
	})

	t.Run("ignore case without default", func(t *testing.T) {
		f := &FixedValue{Values: []string{"a", "b", "c"}, IgnoreCase: true}
		assert.Equal(t,
			"Value has to be `a`, `b` or `c`. Setting is not case sensitive.",
			f.Describe(nil, nil))
	})

	t.Run("aliases listed only when declared", func(t *testing.T) {
		f := &FixedValue{
			Values:  []string{"linux", "osx"},
			Default: "linux",
			Aliases: []Alias{{Name: "mac", Target: "osx"}, {Name: "macos", Target: "osx"}},
		}
		got := f.Describe(nil, nil)
		assert.Equal(t,
			"Value has to be `linux` (default) or `osx`; or one of the known aliases: `mac` for `osx` or `macos` for `osx`. Setting is case sensitive.",
			got)
		assert.Equal(t, 1, strings.Count(got, "(default)"))
	})

	t.Run("table entry wins over synthesis", func(t *testing.T) {
		d := NewDescriptions(DescriptionTable{Tags: map[string]string{"os": "Operating system."}})
		f := &FixedValue{Scalar: Scalar{TypeInfo: TypeInfo{Name: "os"}}, Values: []string{"linux"}}
		assert.Equal(t, "Operating system.", f.Describe(d, Path{"build", "os"}))
	})

	t.Run("key named like a tag keeps synthesis", func(t *testing.T) {
		d := NewDescriptions(DescriptionTable{Tags: map[string]string{"stage": "Commands that will be run on the VM."}})
		f := &FixedValue{Values: []string{"test", "deploy"}}
		assert.Equal(t, "Value has to be `test` or `deploy`. Setting is case sensitive.", f.Describe(d, Path{"stage"}))
	})

	t.Run("format is inherited from scalar", func(t *testing.T) {
		f := &FixedValue{Values: []string{"a"}}
		assert.Equal(t, "string", f.FormatLabel(""))
		assert.Equal(t, "strings", f.FormatLabel("s"))
	})
}

func TestSequence_FormatLabel(t *testing.T) {
	assert.Equal(t,
		"list of strings; or a single string",
		(&Sequence{Elem: &Scalar{}}).FormatLabel(""))

	assert.Equal(t,
		"list of key value mappings; or a single key value mapping",
		(&Sequence{Elem: &Mapping{}}).FormatLabel(""))

	assert.Equal(t,
		"list of strings or encrypted strings; or a single string or encrypted string",
		(&Sequence{Elem: &Scalar{Casts: []Cast{CastStr, CastSecure}}}).FormatLabel(""))

	assert.Empty(t, (&Sequence{}).FormatLabel(""))
}

func TestMapping_FormatLabelAndKeys(t *testing.T) {
	m := &Mapping{Fields: map[string]Node{"b": &Scalar{}, "a": &Scalar{}, "c": &Scalar{}}}

	assert.Equal(t, "key value mapping", m.FormatLabel(""))
	assert.Equal(t, "key value mappings", m.FormatLabel("s"))
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, "key value mapping", (&OpenMapping{}).FormatLabel(""))
	assert.Equal(t, "key value mapping", (&Root{}).FormatLabel(""))
}

func TestDescribe_Fallbacks(t *testing.T) {
	d := NewDescriptions(DescriptionTable{
		Tags: map[string]string{
			"stage":    "Commands that will be run on the VM.",
			"command":  "A shell command.",
			TagMapping: "A key value map.",
		},
		Keys: map[string]string{
			"deploy.provider": "Where to deploy.",
		},
	})

	stage := &Sequence{TypeInfo: TypeInfo{Name: "stage", Ancestors: []string{"command"}}, Elem: &Scalar{}}
	assert.Equal(t, "Commands that will be run on the VM.", stage.Describe(d, Path{"script"}))

	child := &Sequence{TypeInfo: TypeInfo{Name: "before_stage", Ancestors: []string{"stage"}}, Elem: &Scalar{}}
	assert.Equal(t, "Commands that will be run on the VM.", child.Describe(d, Path{"before_install"}))

	scalar := &Scalar{TypeInfo: TypeInfo{Name: "provider"}}
	assert.Equal(t, "Where to deploy.", scalar.Describe(d, Path{"deploy", "provider"}))
	assert.Empty(t, scalar.Describe(d, Path{"other"}))

	assert.Equal(t, "A key value map.", (&Mapping{}).Describe(d, Path{"env"}))
	assert.Equal(t, "A key value map.", (&OpenMapping{}).Describe(d, Path{"env"}))
	assert.Empty(t, (&Scalar{}).Describe(nil, Path{"x"}))
}

func TestAsMappingAndIsScalar(t *testing.T) {
	for _, n := range []Node{&Mapping{}, &OpenMapping{}, &Root{}} {
		m, ok := AsMapping(n)
		assert.True(t, ok, n.Kind().String())
		assert.NotNil(t, m)
	}
	_, ok := AsMapping(&Sequence{})
	assert.False(t, ok)

	assert.True(t, IsScalar(&Scalar{}))
	assert.True(t, IsScalar(&FixedValue{}))
	assert.False(t, IsScalar(&Mapping{}))
	assert.False(t, IsScalar(&Sequence{}))
}
