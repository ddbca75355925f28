package generator

import (
	"go/parser"
	"go/token"

	"golang.org/x/tools/imports"
)

// formatSource reparses assembled source as a correctness oracle and then
// renders it canonically. The reparse is never skipped: it is the only
// defense against a synthesis bug emitting invalid Go, and a failure here is
// always a generator defect, never a definition problem.
func formatSource(filename string, src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution); err != nil {
		return nil, &CodeGenError{File: filename, Err: err}
	}

	// imports.Process sorts the import block and prunes entries the
	// assembled fragments did not end up needing, then prints gofmt style.
	// Its output is deterministic for identical input, which keeps
	// regeneration byte-identical.
	formatted, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, &CodeGenError{File: filename, Err: err}
	}
	return formatted, nil
}
