package markup

// SourceRange represents a byte range in the source string.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Text returns the source text covered by this range.
// Returns "" if the range does not lie within source.
func (r SourceRange) Text(source string) string {
	if r.StartOffset < 0 || r.EndOffset > len(source) || r.StartOffset > r.EndOffset {
		return ""
	}
	return source[r.StartOffset:r.EndOffset]
}
