package markup

import "fmt"

// Severity represents the severity level of a parse diagnostic.
type Severity string

// Severity levels.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic codes.
const (
	// CodeUnterminatedMacro reports a macro call that never closed.
	// The call is recovered as literal text.
	CodeUnterminatedMacro = "unterminated-macro"

	// CodeArityMismatch reports a macro call with the wrong argument count.
	// The node is kept; renderers pad or truncate.
	CodeArityMismatch = "arity-mismatch"

	// CodeArgumentShape reports an argument whose content looks malformed
	// for its expected shape. Never blocks rendering.
	CodeArgumentShape = "argument-shape"
)

// Diagnostic is a non-fatal observation about malformed or suspicious input.
// Diagnostics accumulate alongside the document; they never cause a node to
// be dropped.
type Diagnostic struct {
	// Severity indicates the importance of the diagnostic.
	Severity Severity

	// Code is the machine-readable diagnostic category.
	Code string

	// Message is the human-readable description of the issue.
	Message string

	// Span is the byte range of the offending source.
	Span SourceRange
}

// String formats the diagnostic as "severity[code] at start..end: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s[%s] at %d..%d: %s",
		d.Severity, d.Code, d.Span.StartOffset, d.Span.EndOffset, d.Message)
}

// HasErrors returns true if any diagnostic in the list has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
