package render

import (
	"strings"

	"github.com/docforge/ansimark/pkg/markup"
)

// Compile-time interface check.
var _ Renderer = (*TextRenderer)(nil)

// TextRenderer renders documents as plain text in the style of ansible-doc
// terminal output.
type TextRenderer struct{}

// EscapeText implements Renderer. Plain text has no reserved characters.
func (*TextRenderer) EscapeText(raw string) string {
	return raw
}

// RenderHorizontalRule implements Renderer.
func (*TextRenderer) RenderHorizontalRule() string {
	return "\n-------------\n"
}

// RenderMacro implements Renderer.
func (*TextRenderer) RenderMacro(kind markup.MacroKind, args []string) string {
	switch kind {
	case markup.KindBold:
		return "*" + arg(args, 0) + "*"
	case markup.KindItalic, markup.KindCode, markup.KindValueRef, markup.KindEnvVar:
		return "`" + arg(args, 0) + "'"
	case markup.KindOptionRef, markup.KindReturnValueRef:
		return "`" + arg(args, 0) + "'"
	case markup.KindModuleRef:
		return "[" + arg(args, 0) + "]"
	case markup.KindURL:
		return arg(args, 0)
	case markup.KindLink:
		target := arg(args, 1)
		if target == "" {
			return arg(args, 0)
		}
		return arg(args, 0) + " <" + target + ">"
	case markup.KindCrossRef:
		return arg(args, 0)
	default:
		return strings.Join(args, " ")
	}
}
