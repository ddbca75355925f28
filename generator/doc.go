// Package generator synthesizes Go client source code from define.RestAPI
// definitions.
//
// Generation runs a fixed pipeline per API: validate the definition, render
// each source fragment (request structs, request union, client struct,
// dispatch methods), assemble the fragments into one document in a fixed
// order, reparse the document with go/parser as a correctness oracle, format
// it canonically, and write the result atomically. A reparse failure always
// indicates a generator bug and aborts the run before anything is written.
//
// The entry points are Run, which executes the full pipeline with functional
// options, and Validate, which runs only the pre-generation checks:
//
//	result, err := generator.Run(
//		generator.WithAPIs(api),
//		generator.WithOutputDir("./gen"),
//	)
//
// Generated output is one Go package: shared.go with the runtime types every
// client uses, one <module>.go file per API, a doc.go, and a go.mod manifest.
// Regenerating from an unchanged definition yields byte-identical files.
package generator
