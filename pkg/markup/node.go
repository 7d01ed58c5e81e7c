// Package markup parses the macro-based documentation markup language used
// inside Ansible module and plugin documentation strings (I(text), B(text),
// C(text), M(module.name), U(url), L(text, url), R(text, label), O(option),
// V(value), E(ENV_VAR), RV(return.value), and the standalone HORIZONTALLINE
// token) into a flat, immutable document of typed nodes.
//
// Parsing never fails: malformed input degrades to literal text plus a side
// list of diagnostics. The resulting Document carries no shared mutable
// state, so it may be rendered concurrently by any number of callers.
package markup

// NodeKind classifies the type of a document node.
type NodeKind uint16

// Node kinds.
const (
	// NodeText is a run of literal text with escape sequences resolved.
	NodeText NodeKind = iota

	// NodeMacro is a typed macro call with its raw arguments.
	NodeMacro

	// NodeHorizontalRule is the standalone HORIZONTALLINE separator.
	NodeHorizontalRule
)

// Argument is one raw macro argument together with its source span.
// Arguments are plain text: macros never nest inside their own arguments.
type Argument struct {
	// Text is the escape-resolved argument content. Leading and trailing
	// whitespace is preserved exactly as written.
	Text string

	// Span is the byte range of the argument in the original input.
	Span SourceRange
}

// Node represents a single node in a parsed document.
// Exactly one of the kind-specific fields is meaningful, selected by Kind.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Text holds the content for NodeText nodes.
	Text string

	// Macro identifies the macro for NodeMacro nodes.
	Macro MacroKind

	// Args holds the macro arguments for NodeMacro nodes, in source order.
	Args []Argument

	// Span is the byte range of the node in the original input.
	Span SourceRange
}

// Arg returns the text of the i-th argument, or "" if there is no such
// argument. Renderers use this so that arity violations degrade to empty
// strings instead of panics.
func (n *Node) Arg(i int) string {
	if i < 0 || i >= len(n.Args) {
		return ""
	}
	return n.Args[i].Text
}

// Document is an ordered sequence of nodes produced by Parse.
// It is immutable once constructed and safe for concurrent reads.
type Document struct {
	// Source is the original input string the document was parsed from.
	Source string

	// Nodes are the parsed nodes in rendering order.
	Nodes []Node
}

// IsEmpty returns true if the document contains no nodes.
func (d *Document) IsEmpty() bool {
	return len(d.Nodes) == 0
}
