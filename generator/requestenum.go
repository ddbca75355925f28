// Request union synthesis. Each API yields one sealed interface implemented
// by exactly its wrapper structs, plus one exhaustive type switch resolving
// any request to its frozen RequestParts. The variant set is fixed at
// generation time, so dispatch is a closed switch, never dynamic.

package generator

import (
	"bytes"
	"fmt"

	"github.com/yankeeinlondon/schematic/define"
)

// unionName returns the sealed interface name for an API.
func unionName(api *define.RestAPI) string {
	return api.Name + "Request"
}

// renderRequestUnion emits the sealed interface, the marker methods, and
// the dispatch function.
func renderRequestUnion(api *define.RestAPI, plans []*endpointPlan, file *sourceFile) {
	union := unionName(api)
	marker := "is" + union
	dispatch := lowerFirst(api.Name) + "RequestParts"

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// %s is implemented by every %s request type. The set of\n", union, api.Name)
	fmt.Fprintf(&buf, "// implementations is closed; each endpoint contributes exactly one.\n")
	fmt.Fprintf(&buf, "type %s interface {\n\t%s()\n}\n", union, marker)
	file.addFragment(buf.String())

	buf.Reset()
	for _, plan := range plans {
		fmt.Fprintf(&buf, "func (%s) %s() {}\n", plan.wrapper, marker)
	}
	file.addFragment(buf.String())

	buf.Reset()
	fmt.Fprintf(&buf, "// %s resolves a request to its method, path, payload, and\n", dispatch)
	fmt.Fprintf(&buf, "// headers. The switch is exhaustive over the closed implementation set.\n")
	fmt.Fprintf(&buf, "func %s(req %s) (RequestParts, error) {\n", dispatch, union)
	buf.WriteString("\tswitch r := req.(type) {\n")
	for _, plan := range plans {
		fmt.Fprintf(&buf, "\tcase %s:\n\t\treturn r.parts()\n", plan.wrapper)
	}
	buf.WriteString("\tdefault:\n")
	fmt.Fprintf(&buf, "\t\treturn RequestParts{}, fmt.Errorf(\"unhandled request type %%T\", r)\n")
	buf.WriteString("\t}\n}\n")
	file.addFragment(buf.String())
	file.addImport("fmt")
}
