package generator

import (
	"fmt"

	"github.com/yankeeinlondon/schematic/internal/issues"
)

// DefinitionError reports a structurally invalid API definition, such as a
// malformed path template or a duplicate endpoint id. Generation is refused
// immediately.
type DefinitionError struct {
	// API is the definition's name, when known.
	API string
	// Endpoint is the offending endpoint id, when the problem is scoped to
	// one endpoint.
	Endpoint string
	// Detail describes what is wrong.
	Detail string
}

func (e *DefinitionError) Error() string {
	switch {
	case e.API != "" && e.Endpoint != "":
		return fmt.Sprintf("invalid definition %s.%s: %s", e.API, e.Endpoint, e.Detail)
	case e.API != "":
		return fmt.Sprintf("invalid definition %s: %s", e.API, e.Detail)
	}
	return fmt.Sprintf("invalid definition: %s", e.Detail)
}

// CodeGenError reports that assembled source failed to reparse or format.
// It is always fatal and always a generator defect, never caused by the
// definition; no output is written when it occurs.
type CodeGenError struct {
	// File is the in-memory name of the document that failed.
	File string
	// Err is the underlying parse or format error.
	Err error
}

func (e *CodeGenError) Error() string {
	return fmt.Sprintf("generated code is invalid (%s): %v", e.File, e.Err)
}

func (e *CodeGenError) Unwrap() error { return e.Err }

// WriteError reports an I/O failure while persisting generated output. The
// atomic write protocol guarantees any prior destination content is left
// untouched.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ConfigError reports invalid generator configuration, such as a missing
// output directory or an empty API list.
type ConfigError struct {
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Detail)
}

// Report collects validation diagnostics for a batch of API definitions.
// All checks run to completion so every issue is visible in one pass.
type Report struct {
	Issues []issues.Issue
}

// Ok reports whether the batch may proceed to generation. Warnings and info
// diagnostics do not block; errors do.
func (r *Report) Ok() bool {
	for _, issue := range r.Issues {
		if issue.Severity.Blocking() {
			return false
		}
	}
	return true
}

// ErrorCount returns the number of blocking issues.
func (r *Report) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity.Blocking() {
			n++
		}
	}
	return n
}

func (r *Report) add(issue issues.Issue) {
	r.Issues = append(r.Issues, issue)
}

// ValidationError is returned by Run when validation produced blocking
// issues. The full report is attached so callers can surface every
// diagnostic, not just the first.
type ValidationError struct {
	Report *Report
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d issue(s)", e.Report.ErrorCount())
}
