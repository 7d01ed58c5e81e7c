package render

import (
	"strings"

	"github.com/docforge/ansimark/pkg/markup"
)

// Compile-time interface check.
var _ Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer renders documents as inline HTML.
//
// Literal text is entity escaped; URLs are percent encoded like
// encodeURI(), with '&' additionally escaped inside attributes.
type HTMLRenderer struct {
	// Links resolves module references to URLs. When it returns "", module
	// references render as a plain <span>.
	Links LinkResolver
}

// EscapeText implements Renderer.
func (*HTMLRenderer) EscapeText(raw string) string {
	return escapeHTML(raw)
}

// RenderHorizontalRule implements Renderer.
func (*HTMLRenderer) RenderHorizontalRule() string {
	return "<hr>"
}

// RenderMacro implements Renderer.
func (r *HTMLRenderer) RenderMacro(kind markup.MacroKind, args []string) string {
	switch kind {
	case markup.KindBold:
		return "<b>" + escapeHTML(arg(args, 0)) + "</b>"
	case markup.KindItalic:
		return "<em>" + escapeHTML(arg(args, 0)) + "</em>"
	case markup.KindCode, markup.KindValueRef, markup.KindEnvVar:
		return "<code>" + escapeHTML(arg(args, 0)) + "</code>"
	case markup.KindOptionRef:
		return r.renderOptionLike(arg(args, 0), true)
	case markup.KindReturnValueRef:
		return r.renderOptionLike(arg(args, 0), false)
	case markup.KindModuleRef:
		return r.renderModuleRef(arg(args, 0))
	case markup.KindURL:
		return renderHTMLLink(arg(args, 0), arg(args, 0))
	case markup.KindLink:
		if arg(args, 1) == "" {
			return escapeHTML(arg(args, 0))
		}
		return renderHTMLLink(arg(args, 0), arg(args, 1))
	case markup.KindCrossRef:
		return "<span>" + escapeHTML(arg(args, 0)) + "</span>"
	default:
		return escapeHTML(strings.Join(args, " "))
	}
}

func renderHTMLLink(text, url string) string {
	return "<a href='" + escapeURLAttr(url) + "'>" + escapeHTML(text) + "</a>"
}

func (r *HTMLRenderer) renderModuleRef(fqcn string) string {
	if url := r.resolveModule(fqcn); url != "" {
		return "<a href='" + escapeURLAttr(url) + "'>" + escapeHTML(fqcn) + "</a>"
	}
	return "<span>" + escapeHTML(fqcn) + "</span>"
}

// renderOptionLike formats O() and RV() arguments. An option reference
// without a value is additionally set in <strong>, matching how option
// names are conventionally highlighted in rendered module docs.
func (r *HTMLRenderer) renderOptionLike(argText string, isOption bool) string {
	name, value, hasValue := splitOptionValue(argText)
	strong := isOption && !hasValue

	var b strings.Builder
	b.WriteString("<code>")
	if strong {
		b.WriteString("<strong>")
	}
	b.WriteString(escapeHTML(name))
	if hasValue {
		b.WriteString("=")
		b.WriteString(escapeHTML(value))
	}
	if strong {
		b.WriteString("</strong>")
	}
	b.WriteString("</code>")
	return b.String()
}

func (r *HTMLRenderer) resolveModule(fqcn string) string {
	if r.Links == nil {
		return ""
	}
	return r.Links.ModuleURL(fqcn)
}
