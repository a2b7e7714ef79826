package dsl

import (
	"context"
	"testing"

	"github.com/aretw0/specdoc/internal/runtime"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Travis(t *testing.T) {
	// 1. Build the schema using DSL
	b := New("travis")

	stage := Seq(Str()).As("stage")
	b.Describe("stage", "Commands that will be run on the VM.")
	b.Describe("os", "Operating system to run on.")
	b.DescribeKey("matrix.include", "Extra jobs added to the matrix.")

	b.Root().
		Field("language", Fixed("ruby", "python").Default("ruby").IgnoreCase().Alias("py", "python")).
		Field("os", Fixed("linux", "osx").As("os")).
		Field("script", stage).
		Field("install", stage).
		Field("env", OpenMap(Str())).
		Field("matrix", Map().
			Field("include", Seq(Map().Field("os", Str()).Required("os")))).
		Required("language").
		Experimental("env").
		Alias("lang", "language")

	// 2. Compile to Loader
	loader, err := b.Build()
	require.NoError(t, err)

	schema, err := loader.LoadSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "travis", schema.Name)
	assert.Same(t, schema.Root.Fields["script"], schema.Root.Fields["install"])
	assert.IsType(t, &domain.OpenMapping{}, schema.Root.Fields["env"])

	// 3. Verify the generated entries
	entries := runtime.NewEngine(schema.Descriptions).Spec(schema.Root)

	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key.String())
	}
	assert.Equal(t, []string{
		"env", "install", "lang", "language", "matrix",
		"matrix.include", "matrix.include[]", "matrix.include[].os", "os", "script",
	}, keys)

	include, ok := domain.FindEntry(entries, domain.ParsePath("matrix.include"))
	require.True(t, ok)
	assert.Equal(t, "Extra jobs added to the matrix.", include.Description)

	elem, ok := domain.FindEntry(entries, domain.ParsePath("matrix.include[]"))
	require.True(t, ok)
	assert.Equal(t, "key value mapping", elem.Format)

	os, ok := domain.FindEntry(entries, domain.Path{"os"})
	require.True(t, ok)
	assert.Equal(t, "Operating system to run on.", os.Description)

	nested, ok := domain.FindEntry(entries, domain.ParsePath("matrix.include[].os"))
	require.True(t, ok)
	assert.True(t, nested.Required)

	script, ok := domain.FindEntry(entries, domain.Path{"script"})
	require.True(t, ok)
	assert.Equal(t, "Commands that will be run on the VM.", script.Description)
}

func TestBuilder_Invalid(t *testing.T) {
	b := New("broken")
	b.Root().
		Field("os", Fixed("linux").Default("bsd")).
		Required("missing")

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid schema "broken"`)
	assert.Contains(t, err.Error(), `required key "missing" is not declared`)
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, "integer value", Int().Node().FormatLabel(""))
	assert.Equal(t, "string or encrypted string", Secure().Node().FormatLabel(""))
	assert.Equal(t, domain.TypeInfo{Name: "port", Ancestors: []string{"int"}},
		Int().As("port", "int").Node().Type())
}
