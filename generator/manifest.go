package generator

import (
	"bytes"
	"fmt"
)

// manifestFileName is the companion build manifest emitted at the output
// root.
const manifestFileName = "go.mod"

// manifestGoVersion is the language version declared by generated packages.
// Generated code uses only the standard library, so the manifest carries no
// requirements.
const manifestGoVersion = "1.24"

// renderManifest emits the go.mod for a generated package.
func renderManifest(modulePath string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "module %s\n\ngo %s\n", modulePath, manifestGoVersion)
	return buf.Bytes()
}
