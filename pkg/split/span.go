package split

// Span represents a half-open byte range [Start, End) in an input string.
type Span struct {
	Start int // 0-based byte offset of the first matched byte
	End   int // 0-based byte offset just past the last matched byte
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}
