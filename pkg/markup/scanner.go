package markup

// scanChar is one escape-resolved character of the input stream.
type scanChar struct {
	// b is the literal byte value after escape resolution.
	b byte

	// escaped is true when a backslash escape produced this byte. Escaped
	// bytes are always literal text, never macro syntax.
	escaped bool

	// pos is the byte offset of the character in the raw input. For an
	// escaped character this is the offset of the backslash.
	pos int

	// width is the number of raw input bytes the character covers.
	width int
}

// end returns the exclusive raw-input offset just past this character.
func (c scanChar) end() int {
	return c.pos + c.width
}

// escapable reports whether c is a recognized escape target. A backslash
// followed by anything else passes through verbatim, so unrecognized escapes
// are not errors and stay forward compatible.
func escapable(c byte) bool {
	switch c {
	case '\\', '(', ')', ',':
		return true
	default:
		return false
	}
}

// scanEscapes resolves backslash escapes in the raw input, producing the
// escape-resolved character stream consumed by the tokenizer. It never
// produces diagnostics.
func scanEscapes(input string) []scanChar {
	chars := make([]scanChar, 0, len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '\\' && i+1 < len(input) && escapable(input[i+1]) {
			chars = append(chars, scanChar{b: input[i+1], escaped: true, pos: i, width: 2})
			i++
			continue
		}
		chars = append(chars, scanChar{b: c, pos: i, width: 1})
	}
	return chars
}
