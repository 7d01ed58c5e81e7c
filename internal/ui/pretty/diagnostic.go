package pretty

import (
	"fmt"
	"strings"

	"github.com/docforge/ansimark/pkg/markup"
)

// FormatDiagnostic formats a single parse diagnostic for terminal output.
// The source text is used to convert byte offsets into line:column positions
// and, when showContext is set, to print the offending line with a caret.
func (s *Styles) FormatDiagnostic(diag *markup.Diagnostic, source string, showContext bool) string {
	var builder strings.Builder

	line, column, sourceLine := locate(source, diag.Span.StartOffset)

	location := fmt.Sprintf("%s:%s",
		s.Location.Render(fmt.Sprintf("%d", line)),
		s.Location.Render(fmt.Sprintf("%d", column)),
	)

	severity := s.FormatSeverity(diag.Severity)
	codeDisplay := s.Code.Render("(" + string(diag.Code) + ")")

	// Main line: line:col  severity  message  (code)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(diag.Message),
		codeDisplay,
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev markup.Severity) string {
	switch sev {
	case markup.SeverityError:
		return s.Error.Render("error")
	case markup.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatInputHeader formats an input header for grouped output.
func (s *Styles) FormatInputHeader(name string, issueCount int) string {
	header := s.InputName.Render(name)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}

// locate converts a byte offset into a 1-based line and column and returns
// the text of the containing line. Offsets past the end clamp to the last
// line.
func locate(source string, offset int) (line, column int, sourceLine string) {
	if offset > len(source) {
		offset = len(source)
	}
	lineStart := 0
	line = 1
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(source)
	if i := strings.IndexByte(source[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	return line, offset - lineStart + 1, source[lineStart:lineEnd]
}
