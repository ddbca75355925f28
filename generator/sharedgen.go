package generator

import (
	_ "embed"
	"fmt"
	"strings"
)

// sharedSource is the runtime support compiled and tested as the shared
// package, re-emitted into every generated package.
//
//go:embed shared/shared.go
var sharedSource string

// sharedFileName is the emitted runtime file within a generated package.
const sharedFileName = "shared.go"

// renderSharedFile emits the shared runtime source under the generated
// package name. The original package clause and the comments above it are
// replaced with the generated-code header.
func renderSharedFile(pkgName string) ([]byte, error) {
	const clause = "package shared\n"
	idx := strings.Index(sharedSource, clause)
	if idx < 0 {
		return nil, &CodeGenError{File: sharedFileName, Err: fmt.Errorf("embedded runtime source has no package clause")}
	}
	body := sharedSource[idx+len(clause):]

	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\n")
	b.WriteString("// Shared runtime support for the generated clients in this package.\n\n")
	fmt.Fprintf(&b, "package %s\n", pkgName)
	b.WriteString(body)

	return formatSource(sharedFileName, []byte(b.String()))
}
