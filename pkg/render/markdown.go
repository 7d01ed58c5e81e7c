package render

import (
	"strings"

	"github.com/docforge/ansimark/pkg/markup"
)

// Compile-time interface check.
var _ Renderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer renders documents as inline Markdown.
//
// Emphasis and code use inline HTML tags rather than '*'/'`' so that
// argument content never interacts with Markdown's own delimiters; literal
// text backslash-escapes the Markdown punctuation set.
type MarkdownRenderer struct {
	// Links resolves module references to URLs. When it returns "", module
	// references render as escaped plain text.
	Links LinkResolver
}

// EscapeText implements Renderer.
func (*MarkdownRenderer) EscapeText(raw string) string {
	return escapeMarkdown(raw)
}

// RenderHorizontalRule implements Renderer.
func (*MarkdownRenderer) RenderHorizontalRule() string {
	return "<hr>"
}

// RenderMacro implements Renderer.
func (r *MarkdownRenderer) RenderMacro(kind markup.MacroKind, args []string) string {
	switch kind {
	case markup.KindBold:
		return "<b>" + escapeMarkdown(arg(args, 0)) + "</b>"
	case markup.KindItalic:
		return "<em>" + escapeMarkdown(arg(args, 0)) + "</em>"
	case markup.KindCode, markup.KindValueRef, markup.KindEnvVar:
		return "<code>" + escapeMarkdown(arg(args, 0)) + "</code>"
	case markup.KindOptionRef:
		return renderMarkdownOptionLike(arg(args, 0), true)
	case markup.KindReturnValueRef:
		return renderMarkdownOptionLike(arg(args, 0), false)
	case markup.KindModuleRef:
		return r.renderModuleRef(arg(args, 0))
	case markup.KindURL:
		return renderMarkdownLink(arg(args, 0), arg(args, 0))
	case markup.KindLink:
		if arg(args, 1) == "" {
			return escapeMarkdown(arg(args, 0))
		}
		return renderMarkdownLink(arg(args, 0), arg(args, 1))
	case markup.KindCrossRef:
		return escapeMarkdown(arg(args, 0))
	default:
		return escapeMarkdown(strings.Join(args, " "))
	}
}

func renderMarkdownLink(text, url string) string {
	return "[" + escapeMarkdown(text) + "](" + escapeMarkdown(escapeURL(url)) + ")"
}

func (r *MarkdownRenderer) renderModuleRef(fqcn string) string {
	if r.Links != nil {
		if url := r.Links.ModuleURL(fqcn); url != "" {
			return renderMarkdownLink(fqcn, url)
		}
	}
	return escapeMarkdown(fqcn)
}

func renderMarkdownOptionLike(argText string, isOption bool) string {
	name, value, hasValue := splitOptionValue(argText)
	strong := isOption && !hasValue

	var b strings.Builder
	b.WriteString("<code>")
	if strong {
		b.WriteString("<strong>")
	}
	b.WriteString(escapeMarkdown(name))
	if hasValue {
		b.WriteString("\\=")
		b.WriteString(escapeMarkdown(value))
	}
	if strong {
		b.WriteString("</strong>")
	}
	b.WriteString("</code>")
	return b.String()
}
