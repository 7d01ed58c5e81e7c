package render

import (
	"strings"

	"github.com/docforge/ansimark/pkg/markup"
)

// Compile-time interface check.
var _ Renderer = (*RSTRenderer)(nil)

// RSTRenderer renders documents as inline reStructuredText.
//
// Inline roles need "\ " guards so they work mid-word, and role content may
// not be empty or end in bare whitespace; the escaping follows those rules.
type RSTRenderer struct{}

// EscapeText implements Renderer.
func (*RSTRenderer) EscapeText(raw string) string {
	return escapeRST(raw, false, false)
}

// RenderHorizontalRule implements Renderer.
func (*RSTRenderer) RenderHorizontalRule() string {
	return "\n\n------------\n\n"
}

// RenderMacro implements Renderer.
func (*RSTRenderer) RenderMacro(kind markup.MacroKind, args []string) string {
	switch kind {
	case markup.KindBold:
		return rstRole("strong", arg(args, 0))
	case markup.KindItalic:
		return rstRole("emphasis", arg(args, 0))
	case markup.KindCode, markup.KindValueRef:
		return rstRole("literal", arg(args, 0))
	case markup.KindEnvVar:
		return rstRole("envvar", arg(args, 0))
	case markup.KindOptionRef, markup.KindReturnValueRef:
		return rstRole("literal", arg(args, 0))
	case markup.KindModuleRef:
		fqcn := arg(args, 0)
		return rstRef(fqcn, "ansible_collections."+fqcn+"_module")
	case markup.KindCrossRef:
		return rstRef(arg(args, 0), arg(args, 1))
	case markup.KindURL:
		return rstLink(arg(args, 0), arg(args, 0))
	case markup.KindLink:
		return rstLink(arg(args, 0), arg(args, 1))
	default:
		return escapeRST(strings.Join(args, " "), false, false)
	}
}

// rstRole wraps text in an inline role with "\ " guards.
func rstRole(role, text string) string {
	return "\\ :" + role + ":`" + escapeRST(text, true, true) + "`\\ "
}

// rstRef emits a cross-reference role. The label is used verbatim: RST
// reference labels have their own syntax that escaping would corrupt.
func rstRef(text, label string) string {
	return "\\ :ref:`" + escapeRST(text, true, true) + " <" + label + ">`\\ "
}

// rstLink emits an anonymous external hyperlink. An empty URL degrades to
// escaped text, an empty text to nothing at all.
func rstLink(text, url string) string {
	if text == "" {
		return ""
	}
	if url == "" {
		return escapeRST(text, false, false)
	}
	return "\\ `" + escapeRST(text, true, false) + " <" + escapeURL(url) + ">`__\\ "
}
