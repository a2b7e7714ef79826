/*
Package specdoc generates reference documentation for configuration file formats.

A configuration format is described once as a schema tree: mappings of known keys,
open mappings, sequences, scalars with their accepted casts, and fixed value sets.
specdoc walks that tree and produces one documentation entry per reachable key,
with its description, its expected format, and whether it is required,
experimental or an alias of another key. The entries are then rendered as a
markdown reference, a JSON Schema, a Mermaid diagram, or served over HTTP and MCP.

# Concept

The schema can come from a definition file (YAML, TOML or JSON), from the Go DSL in
pkg/dsl, or from any custom ports.SchemaLoader. Descriptions live in two
tables: "keys" are looked up by dotted key path, "tags" along the type chain of the
node. A shared type such as "stage" is described once and reused wherever it
appears, and a field that happens to share a tag's name never picks up its text.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/specdoc"
	)

	func main() {
		// Compile the schema definition at ./schema.yaml
		gen, err := specdoc.New("./schema.yaml")
		if err != nil {
			log.Fatal(err)
		}

		doc, err := gen.Markdown(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(doc)
	}

The traversal itself is pure and synchronous: Spec and Walk build fresh entries on
every call and may be used concurrently on the same tree.
*/
package specdoc
