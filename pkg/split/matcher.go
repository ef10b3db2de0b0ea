package split

// Matcher locates the next delimiter occurrence in an input string.
//
// Find reports the span of the next match starting at or after from, or
// ok == false if no further match exists. Implementations must satisfy
// from <= Start <= End <= len(s), and a returned span must advance the
// scan: End > from. Tokenize rejects spans violating either rule with a
// MatcherError.
type Matcher interface {
	Find(s string, from int) (span Span, ok bool)
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(s string, from int) (Span, bool)

// Find calls f.
func (f MatcherFunc) Find(s string, from int) (Span, bool) {
	return f(s, from)
}
