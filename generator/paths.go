// Path template handling: extraction of {name} placeholders and their
// substitution. The extraction order determines the leading fields of each
// generated request struct.

package generator

import (
	"fmt"
	"strings"
)

// ExtractPathParams returns the placeholder names in a path template, in
// order of first appearance and without duplicates. Duplicate occurrences of
// the same placeholder are allowed and map to one parameter.
//
// An unmatched brace or an empty {} pair yields a DefinitionError.
func ExtractPathParams(path string) ([]string, error) {
	var params []string
	seen := map[string]bool{}
	start := -1

	for i, c := range path {
		switch c {
		case '{':
			if start >= 0 {
				return nil, malformedPath(path, "nested '{'")
			}
			start = i + 1
		case '}':
			if start < 0 {
				return nil, malformedPath(path, "unmatched '}'")
			}
			name := path[start:i]
			if name == "" {
				return nil, malformedPath(path, "empty placeholder")
			}
			if !seen[name] {
				seen[name] = true
				params = append(params, name)
			}
			start = -1
		}
	}
	if start >= 0 {
		return nil, malformedPath(path, "unmatched '{'")
	}
	return params, nil
}

// SubstitutePathParams replaces every occurrence of each named placeholder
// with its value. Placeholders without a value are left untouched.
func SubstitutePathParams(path string, values map[string]string) string {
	for name, value := range values {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}
	return path
}

func malformedPath(path, reason string) *DefinitionError {
	return &DefinitionError{Detail: fmt.Sprintf("malformed path template %q: %s", path, reason)}
}
