// Package severity provides severity level constants and utilities
// for issues reported by the validator and generator packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue found while validating
// an API definition or generating code from one.
type Severity int

const (
	// SeverityError indicates a definition problem that makes generation
	// unsafe. Generation is refused while any error-level issue exists.
	SeverityError Severity = iota

	// SeverityWarning indicates a definition smell or recommendation that
	// does not prevent generation but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about generation choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates an internal generator failure. A critical
	// issue is always a generator bug, never a definition problem.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Blocking reports whether an issue of this severity refuses generation.
func (s Severity) Blocking() bool {
	return s == SeverityError || s == SeverityCritical
}
