// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the CLI and logs can
//              distinguish bad source text from broken configuration or bugs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Severity levels mapped to front end codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in the user's input (source text, arguments)
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with no more specific classification
	SeverityMedium

	// SeverityHigh indicates an environment problem such as unusable configuration
	SeverityHigh

	// SeverityCritical indicates a broken internal invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeInvalidInput, CodeNotFound, CodeCanceled:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
