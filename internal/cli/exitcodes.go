package cli

import "github.com/docforge/ansimark/pkg/markup"

// Exit codes for ansimark.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitParseErrors indicates the input produced error diagnostics.
	ExitParseErrors = 1

	// ExitParseWarnings indicates the input produced warnings (strict mode).
	ExitParseWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeError signals a failed run together with the process exit code
// the shell should see. It matches ErrParseIssues under errors.Is.
type ExitCodeError struct {
	Code int
}

// Error implements error.
func (e *ExitCodeError) Error() string { return ErrParseIssues.Error() }

// Is reports whether target is ErrParseIssues.
func (e *ExitCodeError) Is(target error) bool { return target == ErrParseIssues }

// ExitCodeFromDiagnostics determines the exit code for a diagnostic list.
func ExitCodeFromDiagnostics(diags []markup.Diagnostic, strict bool) int {
	var errors, warnings int
	for _, d := range diags {
		switch d.Severity {
		case markup.SeverityError:
			errors++
		case markup.SeverityWarning:
			warnings++
		}
	}

	if errors > 0 {
		return ExitParseErrors
	}
	if strict && warnings > 0 {
		return ExitParseWarnings
	}
	return ExitSuccess
}
