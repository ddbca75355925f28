package mcpserver

import (
	"fmt"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/definitions"
)

// definitionInput selects the API definitions a tool operates on: either a
// bundled definition by name or a YAML definition file. Exactly one source
// must be given.
type definitionInput struct {
	API  string `json:"api,omitempty"  jsonschema:"Name of a bundled API definition (see list_apis)"`
	File string `json:"file,omitempty" jsonschema:"Path to a YAML definition file; each document in the stream is one API"`
}

// resolve loads the selected definitions.
func (in definitionInput) resolve() ([]*define.RestAPI, error) {
	switch {
	case in.API != "" && in.File != "":
		return nil, fmt.Errorf("provide either api or file, not both")
	case in.API != "":
		api, ok := definitions.Lookup(in.API)
		if !ok {
			return nil, fmt.Errorf("unknown api %q; known apis: %v", in.API, definitions.Names())
		}
		return []*define.RestAPI{api}, nil
	case in.File != "":
		return definitions.LoadFile(in.File)
	default:
		return nil, fmt.Errorf("either api or file is required")
	}
}
