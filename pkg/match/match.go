// Package match provides ready-made Matcher implementations for pkg/split:
// literal substrings, rune sets and classes, rune runs, and regular
// expression patterns. All matchers are stateless values safe for reuse
// across concurrent splits.
package match

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/splitkit/pkg/split"
)

// Literal returns a matcher for the next occurrence of a fixed delimiter
// substring. An empty delimiter never matches: a zero-width delimiter
// cannot advance the scan.
func Literal(delim string) split.Matcher {
	return split.MatcherFunc(func(s string, from int) (split.Span, bool) {
		if delim == "" {
			return split.Span{}, false
		}
		i := strings.Index(s[from:], delim)
		if i < 0 {
			return split.Span{}, false
		}
		start := from + i
		return split.Span{Start: start, End: start + len(delim)}, true
	})
}

// AnyOf returns a matcher for the next single rune drawn from chars.
// An empty chars set never matches.
func AnyOf(chars string) split.Matcher {
	return split.MatcherFunc(func(s string, from int) (split.Span, bool) {
		i := strings.IndexAny(s[from:], chars)
		if i < 0 {
			return split.Span{}, false
		}
		start := from + i
		_, w := utf8.DecodeRuneInString(s[start:])
		return split.Span{Start: start, End: start + w}, true
	})
}
