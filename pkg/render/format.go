package render

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the renderers.
const (
	FormatText     Format = "text"
	FormatRST      Format = "rst"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format string, returning an error for unknown
// formats. An unknown format is the only hard failure in this package;
// malformed markup never is.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "rst":
		return FormatRST, nil
	case "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, rst, html, markdown", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatRST, FormatHTML, FormatMarkdown:
		return true
	default:
		return false
	}
}
