package match

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"

	"github.com/leapstack-labs/splitkit/pkg/split"
)

// Class returns a matcher for the next single rune accepted by set.
func Class(set runes.Set) split.Matcher {
	return split.MatcherFunc(func(s string, from int) (split.Span, bool) {
		for i := from; i < len(s); {
			r, w := utf8.DecodeRuneInString(s[i:])
			if set.Contains(r) {
				return split.Span{Start: i, End: i + w}, true
			}
			i += w
		}
		return split.Span{}, false
	})
}

// Runs returns a matcher for a maximal run of one or more consecutive
// runes accepted by set. Adjacent set runes always belong to the same
// match, so a run never produces interior empty tokens.
func Runs(set runes.Set) split.Matcher {
	return split.MatcherFunc(func(s string, from int) (split.Span, bool) {
		start := -1
		for i := from; i < len(s); {
			r, w := utf8.DecodeRuneInString(s[i:])
			if set.Contains(r) {
				if start < 0 {
					start = i
				}
			} else if start >= 0 {
				return split.Span{Start: start, End: i}, true
			}
			i += w
		}
		if start >= 0 {
			return split.Span{Start: start, End: len(s)}, true
		}
		return split.Span{}, false
	})
}

// Whitespace matches maximal runs of Unicode whitespace.
var Whitespace = Runs(runes.Predicate(unicode.IsSpace))
