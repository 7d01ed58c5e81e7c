package pretty

import (
	"fmt"
	"strings"

	"github.com/docforge/ansimark/pkg/markup"
)

// FormatSummaryOneLine summarizes a diagnostic list as a single line.
// Example: "3 issues (2 errors, 1 warning)".
func (s *Styles) FormatSummaryOneLine(diags []markup.Diagnostic) string {
	if len(diags) == 0 {
		return s.Success.Render("No issues found") + "\n"
	}

	errors, warnings := countBySeverity(diags)

	issueWord := "issues"
	if len(diags) == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if errors > 0 {
		severityParts = append(severityParts, s.Error.Render(pluralize(errors, "error")))
	}
	if warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(pluralize(warnings, "warning")))
	}

	return fmt.Sprintf("%d %s (%s)\n", len(diags), issueWord, strings.Join(severityParts, ", "))
}

func countBySeverity(diags []markup.Diagnostic) (errors, warnings int) {
	for _, d := range diags {
		switch d.Severity {
		case markup.SeverityError:
			errors++
		case markup.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
