package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// fqcnRe matches a fully qualified collection name such as
// ansible.builtin.debug (at least three dot-separated components).
var fqcnRe = regexp.MustCompile(`^[a-z0-9_]+\.[a-z0-9_]+(?:\.[a-z0-9_]+)+$`)

// validate checks every macro node against its kind's schema. Arity
// violations are errors; argument-shape problems are warnings. The node is
// never removed either way.
func validate(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		if node.Kind != NodeMacro {
			continue
		}
		if d, ok := checkArity(node); ok {
			diags = append(diags, d)
		}
		diags = append(diags, checkShapes(node)...)
	}
	return diags
}

func checkArity(node *Node) (Diagnostic, bool) {
	want := node.Macro.Arity()
	if len(node.Args) == want {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Severity: SeverityError,
		Code:     CodeArityMismatch,
		Message: fmt.Sprintf("%s( expects %d argument(s), got %d",
			node.Macro.Letter(), want, len(node.Args)),
		Span: node.Span,
	}, true
}

func checkShapes(node *Node) []Diagnostic {
	var diags []Diagnostic
	warn := func(span SourceRange, format string, args ...any) {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeArgumentShape,
			Message:  fmt.Sprintf(format, args...),
			Span:     span,
		})
	}

	switch node.Macro {
	case KindModuleRef:
		if arg, span, ok := argument(node, 0); ok && !fqcnRe.MatchString(arg) {
			warn(span, "module name %q is not a fully qualified collection name", arg)
		}
	case KindOptionRef, KindReturnValueRef:
		if arg, span, ok := argument(node, 0); ok {
			name, _, _ := strings.Cut(arg, "=")
			if strings.ContainsAny(name, ":#") || containsWhitespace(name) {
				warn(span, "invalid option/return value name %q", name)
			}
		}
	case KindEnvVar:
		if arg, span, ok := argument(node, 0); ok && containsWhitespace(arg) {
			warn(span, "environment variable name %q contains whitespace", arg)
		}
	case KindURL:
		if arg, span, ok := argument(node, 0); ok && containsWhitespace(arg) {
			warn(span, "URL %q contains whitespace", arg)
		}
	case KindLink:
		if arg, span, ok := argument(node, 1); ok && containsWhitespace(strings.TrimSpace(arg)) {
			warn(span, "link target %q contains whitespace", arg)
		}
	case KindCrossRef:
		if arg, span, ok := argument(node, 1); ok && containsWhitespace(strings.TrimSpace(arg)) {
			warn(span, "reference label %q contains whitespace", arg)
		}
	}
	return diags
}

// argument returns the i-th argument and its span, if present.
func argument(node *Node, i int) (string, SourceRange, bool) {
	if i >= len(node.Args) {
		return "", SourceRange{}, false
	}
	return node.Args[i].Text, node.Args[i].Span, true
}

func containsWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t\n\r")
}
