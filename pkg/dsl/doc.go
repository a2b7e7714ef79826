/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing specdoc schemas.

It allows developers to declare a configuration schema in Go using a fluent builder pattern
instead of a definition file. This is particularly useful for tools that already model their
configuration in code, for unit testing, and for leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/specdoc/pkg/dsl"
	)

	func main() {
		b := dsl.New("travis")

		stage := dsl.Seq(dsl.Str()).As("stage")
		b.Describe("stage", "Commands that will be run on the VM.")

		b.Root().
			Field("language", dsl.Fixed("ruby", "python").Default("ruby").IgnoreCase()).
			Field("script", stage).
			Field("install", stage).
			Required("language").
			Alias("lang", "language")

		// The resulting loader can be used as a ports.SchemaLoader
		loader, err := b.Build()
		// ... pass loader to specdoc.New("", specdoc.WithLoader(loader))
	}

Builders are shared by reference: using the same builder under several keys
declares one named type, exactly like a type reference in a definition file.
*/
package dsl
