package render

import "strings"

// isURLSafe reports whether a byte passes through percent encoding
// unchanged. The set matches JavaScript's encodeURI().
func isURLSafe(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')',
		';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '#':
		return true
	default:
		return false
	}
}

const upperHex = "0123456789ABCDEF"

// escapeURL percent encodes a URL the way encodeURI() does.
func escapeURL(url string) string {
	var b strings.Builder
	b.Grow(len(url))
	for i := 0; i < len(url); i++ {
		c := url[i]
		if isURLSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}
	return b.String()
}

// escapeURLAttr percent encodes a URL for use inside an HTML attribute.
// The only difference to escapeURL is that '&' becomes "&amp;".
func escapeURLAttr(url string) string {
	var b strings.Builder
	b.Grow(len(url))
	for i := 0; i < len(url); i++ {
		c := url[i]
		switch {
		case c == '&':
			b.WriteString("&amp;")
		case isURLSafe(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&15])
		}
	}
	return b.String()
}

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// escapeHTML escapes the HTML-reserved characters '<', '>', and '&'.
func escapeHTML(text string) string {
	return htmlReplacer.Replace(text)
}

// isRSTSafe reports whether a byte needs no backslash in inline RST.
func isRSTSafe(c byte) bool {
	switch c {
	case '\\', '<', '>', '_', '*', '`':
		return false
	default:
		return true
	}
}

// escapeRST backslash-escapes RST-reserved characters.
//
// When guardWhitespace is set, leading and trailing spaces are protected
// with "\ " so the text survives inside an inline role. When mustNotBeEmpty
// is set, empty input yields "\ " because inline roles reject empty content.
func escapeRST(text string, guardWhitespace, mustNotBeEmpty bool) string {
	if len(text) == 0 {
		if mustNotBeEmpty {
			return "\\ "
		}
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	if guardWhitespace && text[0] == ' ' {
		b.WriteString("\\ ")
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isRSTSafe(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	if guardWhitespace && text[len(text)-1] == ' ' {
		b.WriteString("\\ ")
	}
	return b.String()
}

// mdReserved is the punctuation set the Markdown renderer escapes.
const mdReserved = "!\"#$%&'()*+,:;<=>?@[\\]^_`{|}~.-"

// escapeMarkdown backslash-escapes Markdown punctuation.
func escapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if strings.IndexByte(mdReserved, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
