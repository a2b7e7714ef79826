package specdoc_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/specdoc"
	"github.com/aretw0/specdoc/pkg/dsl"
)

func tinyLoader() *dsl.Builder {
	b := dsl.New("tiny")
	b.Describe("port", "Port to listen on.")
	b.Root().
		Field("port", dsl.Int().As("port")).
		Field("host", dsl.Str()).
		Required("port").
		Alias("p", "port")
	return b
}

// ExampleNew_dsl demonstrates how to document a schema declared in Go,
// without reading from the filesystem.
func ExampleNew_dsl() {
	// 1. Declare the schema with the DSL
	loader, err := tinyLoader().Build()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Initialize specdoc with the custom loader
	// Note: We leave path empty ("") because we are providing a loader.
	gen, err := specdoc.New("", specdoc.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	// 3. Walk the schema
	entries, err := gen.Entries(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range entries {
		fmt.Printf("%s required=%v format=%q alias_for=%q\n", e.Key, e.Required, e.Format, e.AliasFor.String())
	}

	// Output:
	// host required=false format="string" alias_for=""
	// p required=true format="" alias_for="port"
	// port required=true format="integer value" alias_for=""
}

// ExampleGenerator_Markdown renders the reference document with custom prose.
func ExampleGenerator_Markdown() {
	loader, err := tinyLoader().Build()
	if err != nil {
		log.Fatal(err)
	}

	gen, err := specdoc.New("", specdoc.WithLoader(loader), specdoc.WithDocument(specdoc.Document{
		Title:  "Tiny",
		Footer: "Generated.",
	}))
	if err != nil {
		log.Fatal(err)
	}

	doc, err := gen.Markdown(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(doc)

	// Output:
	// ## Tiny
	// ### Available Options
	// #### `host`
	// **Expected format:** String.
	//
	// #### `p`
	// **This setting is required!**
	//
	// Alias for [`port`](#port).
	// #### `port`
	// **This setting is required!**
	//
	// Port to listen on.
	//
	// **Expected format:** Integer value.
	//
	// ## Generating the Specification
	//
	// Generated.
}
