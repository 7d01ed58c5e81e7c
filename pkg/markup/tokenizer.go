package markup

import "strings"

// horizontalLineWord is the standalone token that renders as a rule.
// It is recognized only as a whole word, never inside other prose.
const horizontalLineWord = "HORIZONTALLINE"

// tokenizer performs a single-pass tokenization of the escape-resolved
// character stream. Lookahead is bounded by the longest macro name.
type tokenizer struct {
	chars []scanChar
	toks  []Token
	pos   int

	// depth is the parenthesis depth inside the current macro call,
	// relative to the call's own opening parenthesis. 0 when outside.
	depth int

	// text accumulates the current plain-text run.
	text      strings.Builder
	textStart int
	textEnd   int
}

// Tokenize scans the raw input and returns its flat token stream.
// Escape resolution happens first, so an escaped parenthesis or comma is
// never treated as structure.
func Tokenize(input string) []Token {
	t := &tokenizer{
		chars:     scanEscapes(input),
		toks:      make([]Token, 0, 8),
		textStart: -1,
	}
	t.tokenize()
	return t.toks
}

func (t *tokenizer) tokenize() {
	for t.pos < len(t.chars) {
		if t.depth > 0 {
			t.scanInsideMacro()
		} else {
			t.scanOutsideMacro()
		}
	}
	t.flushText()
}

// scanOutsideMacro handles one character (or one macro-start/rule match) of
// top-level prose.
func (t *tokenizer) scanOutsideMacro() {
	c := t.chars[t.pos]
	if !c.escaped && isWordByte(c.b) && t.atWordBoundary() {
		if t.tryHorizontalRule() || t.tryMacroStart() {
			return
		}
	}
	t.appendText(c)
	t.pos++
}

// scanInsideMacro handles one character of a macro call's argument region.
func (t *tokenizer) scanInsideMacro() {
	c := t.chars[t.pos]
	if !c.escaped {
		switch c.b {
		case '(':
			t.depth++
		case ')':
			t.depth--
			if t.depth == 0 {
				t.flushText()
				t.emit(Token{Kind: TokMacroEnd, StartOffset: c.pos, EndOffset: c.end()})
				t.pos++
				return
			}
		case ',':
			if t.depth == 1 {
				t.flushText()
				t.emit(Token{Kind: TokArgSeparator, StartOffset: c.pos, EndOffset: c.end()})
				t.pos++
				return
			}
		}
	}
	t.appendText(c)
	t.pos++
}

// atWordBoundary reports whether the previous effective character does not
// continue a word, so a macro name starting here stands alone.
func (t *tokenizer) atWordBoundary() bool {
	if t.pos == 0 {
		return true
	}
	prev := t.chars[t.pos-1]
	return prev.escaped || !isWordByte(prev.b)
}

// tryHorizontalRule matches the standalone HORIZONTALLINE word at the
// current position. A trailing word character disqualifies the match.
func (t *tokenizer) tryHorizontalRule() bool {
	end := t.pos + len(horizontalLineWord)
	if end > len(t.chars) {
		return false
	}
	for i := 0; i < len(horizontalLineWord); i++ {
		c := t.chars[t.pos+i]
		if c.escaped || c.b != horizontalLineWord[i] {
			return false
		}
	}
	if end < len(t.chars) {
		next := t.chars[end]
		if !next.escaped && isWordByte(next.b) {
			return false
		}
	}
	t.flushText()
	t.emit(Token{
		Kind:        TokHorizontalRule,
		StartOffset: t.chars[t.pos].pos,
		EndOffset:   t.chars[end-1].end(),
	})
	t.pos = end
	return true
}

// tryMacroStart matches a macro name immediately followed by an unescaped
// opening parenthesis. Longer names win, so RV( is never read as R.
func (t *tokenizer) tryMacroStart() bool {
	for _, nameLen := range []int{2, 1} {
		open := t.pos + nameLen
		if open >= len(t.chars) {
			continue
		}
		name := t.charString(t.pos, open)
		if name == "" {
			continue
		}
		if _, ok := macroByLetter[name]; !ok {
			continue
		}
		openChar := t.chars[open]
		if openChar.escaped || openChar.b != '(' {
			continue
		}
		t.flushText()
		t.emit(Token{
			Kind:        TokMacroStart,
			StartOffset: t.chars[t.pos].pos,
			EndOffset:   openChar.end(),
			Name:        name,
		})
		t.pos = open + 1
		t.depth = 1
		return true
	}
	return false
}

// charString returns the unescaped character run [from, to), or "" if any
// character in the run was escaped.
func (t *tokenizer) charString(from, to int) string {
	var b strings.Builder
	for i := from; i < to; i++ {
		if t.chars[i].escaped {
			return ""
		}
		b.WriteByte(t.chars[i].b)
	}
	return b.String()
}

func (t *tokenizer) appendText(c scanChar) {
	if t.textStart < 0 {
		t.textStart = c.pos
	}
	t.text.WriteByte(c.b)
	t.textEnd = c.end()
}

func (t *tokenizer) flushText() {
	if t.textStart < 0 {
		return
	}
	t.emit(Token{
		Kind:        TokText,
		StartOffset: t.textStart,
		EndOffset:   t.textEnd,
		Text:        t.text.String(),
	})
	t.text.Reset()
	t.textStart = -1
}

func (t *tokenizer) emit(tok Token) {
	t.toks = append(t.toks, tok)
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
