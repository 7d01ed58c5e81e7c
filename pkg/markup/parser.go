package markup

import "strings"

// Parse converts a markup string into a Document plus a list of diagnostics.
//
// Parse never fails and is deterministic: the same input always yields an
// identical document and identical diagnostics. Malformed macro calls are
// demoted to literal text and reported as diagnostics instead of aborting.
func Parse(input string) (*Document, []Diagnostic) {
	p := &parser{
		input:     input,
		toks:      Tokenize(input),
		textStart: -1,
	}
	p.parse()
	doc := &Document{Source: input, Nodes: p.nodes}
	p.diags = append(p.diags, validate(doc)...)
	return doc, p.diags
}

// parser consumes the token stream and builds nodes in order.
type parser struct {
	input string
	toks  []Token
	pos   int
	nodes []Node
	diags []Diagnostic

	// text coalesces adjacent text tokens into a single node.
	text      strings.Builder
	textStart int
	textEnd   int
}

func (p *parser) parse() {
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		switch tok.Kind {
		case TokText:
			p.appendText(tok.Text, tok.StartOffset, tok.EndOffset)
			p.pos++
		case TokHorizontalRule:
			p.flushText()
			p.nodes = append(p.nodes, Node{Kind: NodeHorizontalRule, Span: tok.Span()})
			p.pos++
		case TokMacroStart:
			p.parseMacro(tok)
		default:
			// Separators and closers outside a macro cannot be produced by
			// the tokenizer; skip defensively.
			p.pos++
		}
	}
	p.flushText()
}

// parseMacro collects the argument tokens of one macro call. If the input
// ends before the matching close, the whole call is recovered as literal
// text spanning from the macro start to the end of input.
func (p *parser) parseMacro(start Token) {
	p.pos++

	var args []Argument
	var argText strings.Builder
	argStart := start.EndOffset

	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		switch tok.Kind {
		case TokText:
			argText.WriteString(tok.Text)
			p.pos++
		case TokArgSeparator:
			args = append(args, Argument{
				Text: argText.String(),
				Span: SourceRange{StartOffset: argStart, EndOffset: tok.StartOffset},
			})
			argText.Reset()
			argStart = tok.EndOffset
			p.pos++
		case TokMacroEnd:
			args = append(args, Argument{
				Text: argText.String(),
				Span: SourceRange{StartOffset: argStart, EndOffset: tok.StartOffset},
			})
			// Text preceding the call is flushed only now: an unterminated
			// call must instead merge back into that pending text.
			p.flushText()
			p.nodes = append(p.nodes, Node{
				Kind:  NodeMacro,
				Macro: macroByLetter[start.Name].kind,
				Args:  args,
				Span:  SourceRange{StartOffset: start.StartOffset, EndOffset: tok.EndOffset},
			})
			p.pos++
			return
		default:
			// A macro start inside an argument region is impossible: the
			// tokenizer does not recognize macros there.
			p.pos++
		}
	}

	// Unterminated call: demote to literal text, keep the raw source.
	span := SourceRange{StartOffset: start.StartOffset, EndOffset: len(p.input)}
	p.appendText(span.Text(p.input), span.StartOffset, span.EndOffset)
	p.diags = append(p.diags, Diagnostic{
		Severity: SeverityError,
		Code:     CodeUnterminatedMacro,
		Message:  "cannot find closing \")\" for " + start.Name + "(",
		Span:     span,
	})
}

func (p *parser) appendText(text string, start, end int) {
	if p.textStart < 0 {
		p.textStart = start
	}
	p.text.WriteString(text)
	p.textEnd = end
}

func (p *parser) flushText() {
	if p.textStart < 0 {
		return
	}
	p.nodes = append(p.nodes, Node{
		Kind: NodeText,
		Text: p.text.String(),
		Span: SourceRange{StartOffset: p.textStart, EndOffset: p.textEnd},
	})
	p.text.Reset()
	p.textStart = -1
}
