package markup

// TokenKind classifies the type of a token in the markup source.
type TokenKind uint16

// Token kinds emitted by the tokenizer.
const (
	// TokText is a run of plain text with escape sequences resolved.
	TokText TokenKind = iota

	// TokMacroStart is a macro name followed by its opening parenthesis.
	TokMacroStart

	// TokArgSeparator is an argument-separating comma at parenthesis depth 1.
	TokArgSeparator

	// TokMacroEnd is the closing parenthesis that ends a macro call.
	TokMacroEnd

	// TokHorizontalRule is the standalone HORIZONTALLINE word.
	TokHorizontalRule
)

// Token represents a classified span of the markup source.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// StartOffset is the byte index in the raw input where the token begins
	// (inclusive).
	StartOffset int

	// EndOffset is the byte index in the raw input where the token ends
	// (exclusive). Escape sequences make EndOffset-StartOffset larger than
	// len(Text).
	EndOffset int

	// Text is the escape-resolved content for TokText tokens.
	Text string

	// Name is the macro letter for TokMacroStart tokens (e.g. "RV").
	Name string
}

// Span returns the token's byte range in the raw input.
func (t Token) Span() SourceRange {
	return SourceRange{StartOffset: t.StartOffset, EndOffset: t.EndOffset}
}

// Len returns the length of the token in raw input bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}
