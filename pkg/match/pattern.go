package match

import (
	"regexp"

	"github.com/leapstack-labs/splitkit/pkg/split"
)

// Pattern returns a matcher delegating to a compiled regular expression.
// The search runs over the remaining input, so ^ anchors at the current
// scan position rather than the start of the original string. Patterns
// that can match the empty string violate the forward-progress contract
// and are rejected by the tokenizer at match time.
func Pattern(re *regexp.Regexp) split.Matcher {
	return split.MatcherFunc(func(s string, from int) (split.Span, bool) {
		loc := re.FindStringIndex(s[from:])
		if loc == nil {
			return split.Span{}, false
		}
		return split.Span{Start: from + loc[0], End: from + loc[1]}, true
	})
}
