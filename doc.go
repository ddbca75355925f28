// Package schematic provides a declarative model for describing REST APIs
// and a multi-phase code generator that turns those descriptions into
// strongly-typed Go HTTP client source code.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - define: declarative, immutable API definitions (endpoints, auth,
//     request and response shapes)
//   - generator: validation, code synthesis, assembly, reparse checking,
//     deterministic formatting, and atomic file output
//   - definitions: built-in API definitions that ship with the tool
//
// # Quick Start
//
// Generate a client for a built-in API:
//
//	import (
//		"github.com/yankeeinlondon/schematic/definitions"
//		"github.com/yankeeinlondon/schematic/generator"
//	)
//
//	api, _ := definitions.Lookup("openai")
//	result, err := generator.Run(
//		generator.WithAPIs(api),
//		generator.WithOutputDir("./gen"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("wrote %d files\n", len(result.Files))
//
// Validate a definition without generating anything:
//
//	report := generator.Validate(api)
//	for _, issue := range report.Issues {
//		fmt.Println(issue)
//	}
//
// The generated output is a self-contained Go package: one file per API, a
// shared file with the common error and payload types, and a go.mod
// manifest. Generation is deterministic; regenerating from an unchanged
// definition produces byte-identical files.
package schematic
