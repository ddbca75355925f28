// Package commands provides CLI command handlers for schematic.
package commands

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/definitions"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// resolveDefinitions loads the definitions a command operates on from its
// --api, --file, and --all flags. Exactly one selector must be used.
func resolveDefinitions(apiName, file string, all bool) ([]*define.RestAPI, error) {
	selectors := 0
	if apiName != "" {
		selectors++
	}
	if file != "" {
		selectors++
	}
	if all {
		selectors++
	}
	if selectors != 1 {
		return nil, fmt.Errorf("exactly one of --api, --file, or --all is required")
	}

	switch {
	case all:
		return definitions.All(), nil
	case file != "":
		return definitions.LoadFile(file)
	default:
		api, ok := definitions.Lookup(apiName)
		if !ok {
			return nil, fmt.Errorf("unknown api '%s'. Known apis: %v", apiName, definitions.Names())
		}
		return []*define.RestAPI{api}, nil
	}
}
