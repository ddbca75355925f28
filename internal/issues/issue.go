// Package issues provides a unified issue type for definition validation
// and generation problems.
package issues

import (
	"fmt"

	"github.com/yankeeinlondon/schematic/internal/severity"
)

// Code identifies the category of a validation issue.
type Code string

const (
	// CodeNamingCollision reports a body or response type whose name equals
	// the name the generator assigns to the endpoint's wrapper struct.
	CodeNamingCollision Code = "naming-collision"
	// CodeInvalidRequestSuffix reports a request suffix override that is not
	// purely alphanumeric.
	CodeInvalidRequestSuffix Code = "invalid-request-suffix"
	// CodeDuplicateEndpoint reports two endpoints sharing one id.
	CodeDuplicateEndpoint Code = "duplicate-endpoint"
	// CodeMalformedPath reports a path template with unmatched or empty braces.
	CodeMalformedPath Code = "malformed-path"
	// CodeInvalidFormField reports an illegal form field declaration, such as
	// a file field inside a url-encoded request or a files field with
	// min greater than max.
	CodeInvalidFormField Code = "invalid-form-field"
	// CodeDuplicateFormField reports two fields sharing one name within a
	// single request body.
	CodeDuplicateFormField Code = "duplicate-form-field"
	// CodeModulePathCollision reports two APIs resolving to the same module
	// path without both declaring it explicitly.
	CodeModulePathCollision Code = "module-path-collision"
	// CodeMissingCredentialConfig reports an auth strategy whose credential
	// env var names are not configured on the API.
	CodeMissingCredentialConfig Code = "missing-credential-config"
	// CodeDuplicateGeneratedName reports two APIs destined for one generated
	// package that emit the same top-level identifier.
	CodeDuplicateGeneratedName Code = "duplicate-generated-name"
	// CodeReservedModulePath reports a module path whose output file name is
	// already claimed by the generator (doc, shared, go).
	CodeReservedModulePath Code = "reserved-module-path"
)

// Issue represents a single problem found during definition validation.
type Issue struct {
	// Code is the machine-readable category of the issue
	Code Code
	// Path locates the problematic element (e.g., "openai.endpoints.CreateSpeech")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	return fmt.Sprintf("%s %s [%s]: %s", symbol, i.Path, i.Code, i.Message)
}
