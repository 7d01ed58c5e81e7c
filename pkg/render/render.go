// Package render converts parsed markup documents into output strings.
//
// Each output format implements the Renderer contract: an escaping function
// for literal text, a per-kind macro rendering function, and a horizontal
// rule. Rendering never fails; malformed nodes degrade to escaped text. The
// only error this package returns is a request for an unknown format.
package render

import (
	"fmt"
	"strings"

	"github.com/docforge/ansimark/pkg/markup"
)

// Renderer converts document nodes into one output format.
type Renderer interface {
	// EscapeText escapes format-reserved characters in literal text.
	EscapeText(raw string) string

	// RenderMacro formats one macro call. Missing required arguments are
	// rendered as empty strings; extra arguments are ignored.
	RenderMacro(kind markup.MacroKind, args []string) string

	// RenderHorizontalRule returns the format's rule construct.
	RenderHorizontalRule() string
}

// New creates a Renderer for the given format without link resolution.
func New(format Format) (Renderer, error) {
	return NewWithLinks(format, NoLinks{})
}

// NewWithLinks creates a Renderer for the given format using the provided
// LinkResolver for module references.
func NewWithLinks(format Format, links LinkResolver) (Renderer, error) {
	if links == nil {
		links = NoLinks{}
	}
	switch format {
	case FormatText:
		return &TextRenderer{}, nil
	case FormatRST:
		return &RSTRenderer{}, nil
	case FormatHTML:
		return &HTMLRenderer{Links: links}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{Links: links}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Render renders a parsed document in the given format.
func Render(doc *markup.Document, format Format) (string, error) {
	r, err := New(format)
	if err != nil {
		return "", err
	}
	return RenderWith(doc, r), nil
}

// RenderWith renders a parsed document with an explicit Renderer.
// It never fails: every node kind maps to output, worst case escaped text.
func RenderWith(doc *markup.Document, r Renderer) string {
	var b strings.Builder
	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		switch node.Kind {
		case markup.NodeText:
			b.WriteString(r.EscapeText(node.Text))
		case markup.NodeHorizontalRule:
			b.WriteString(r.RenderHorizontalRule())
		case markup.NodeMacro:
			b.WriteString(r.RenderMacro(node.Macro, argTexts(node)))
		}
	}
	return b.String()
}

// RenderString parses the input and renders it in one step, returning the
// output together with the parse diagnostics.
func RenderString(input string, format Format) (string, []markup.Diagnostic, error) {
	r, err := New(format)
	if err != nil {
		return "", nil, err
	}
	doc, diags := markup.Parse(input)
	return RenderWith(doc, r), diags, nil
}

// paragraphFrame describes how a format wraps and joins paragraphs.
type paragraphFrame struct {
	start, end, sep, empty string
}

func frameFor(format Format) paragraphFrame {
	switch format {
	case FormatHTML:
		return paragraphFrame{start: "<p>", end: "</p>"}
	case FormatRST:
		return paragraphFrame{sep: "\n\n", empty: "\\ "}
	case FormatMarkdown:
		return paragraphFrame{sep: "\n\n", empty: " "}
	default:
		return paragraphFrame{sep: "\n\n"}
	}
}

// RenderParagraphs renders independently parsed paragraphs and joins them
// with the format's paragraph separators and wrappers.
func RenderParagraphs(docs []*markup.Document, format Format) (string, error) {
	return RenderParagraphsWith(docs, format, NoLinks{})
}

// RenderParagraphsWith is RenderParagraphs with an explicit LinkResolver.
func RenderParagraphsWith(docs []*markup.Document, format Format, links LinkResolver) (string, error) {
	r, err := NewWithLinks(format, links)
	if err != nil {
		return "", err
	}
	frame := frameFor(format)
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString(frame.sep)
		}
		b.WriteString(frame.start)
		if doc.IsEmpty() {
			b.WriteString(frame.empty)
		} else {
			b.WriteString(RenderWith(doc, r))
		}
		b.WriteString(frame.end)
	}
	return b.String(), nil
}

// argTexts flattens a macro node's arguments to their text values.
func argTexts(node *markup.Node) []string {
	args := make([]string, len(node.Args))
	for i := range node.Args {
		args[i] = node.Args[i].Text
	}
	return args
}

// arg returns args[i] or "" when the argument is missing, so arity
// violations degrade instead of panicking.
func arg(args []string, i int) string {
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// splitOptionValue splits an option-like argument at the first '=' into a
// name and an optional value. O(name=value) carries its value in the raw
// argument; the AST does not pre-split it.
func splitOptionValue(argText string) (name, value string, hasValue bool) {
	return strings.Cut(argText, "=")
}
