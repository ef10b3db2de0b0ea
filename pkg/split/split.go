package split

// Tokenize splits s into tokens at matches of m, under the given limit.
//
// The scan walks s left to right. Each match contributes the text between
// the previous match (or the start of the input) and the match itself as
// one token; the text after the final match becomes the last token. Tokens
// may be empty where matches are adjacent or touch the ends of the input.
//
// Under Default, trailing empty tokens are removed after the scan; an empty
// input therefore yields an empty sequence. Under All nothing is trimmed,
// so an empty input yields a single empty token. Under Max(n) the scan
// stops with one token slot left and emits the rest of the input verbatim;
// Max(1) returns the whole input without consulting the matcher at all.
//
// The result is eager and the call is pure: m is the only collaborator, s
// is never mutated, and fixed inputs produce a fixed output.
func Tokenize(s string, m Matcher, limit Limit) ([]string, error) {
	if err := limit.validate(); err != nil {
		return nil, err
	}

	tokens := []string{}
	cursor := 0
	for {
		// With one slot left under a bounded limit, the final token
		// absorbs the unscanned rest of the input.
		if limit.mode == modeMax && len(tokens) == limit.max-1 {
			tokens = append(tokens, s[cursor:])
			break
		}

		span, ok := m.Find(s, cursor)
		if !ok {
			tokens = append(tokens, s[cursor:])
			break
		}
		if err := checkSpan(span, cursor, len(s)); err != nil {
			return nil, err
		}

		tokens = append(tokens, s[cursor:span.Start])
		cursor = span.End
	}

	// Only the default mode trims; a concrete bound never does, even when
	// the last token happens to be empty.
	if limit.mode == modeDefault {
		for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
			tokens = tokens[:len(tokens)-1]
		}
	}
	return tokens, nil
}

// checkSpan enforces the Matcher contract: a match lies at or after the
// search offset, inside the input, and advances the cursor.
func checkSpan(span Span, from, length int) error {
	switch {
	case span.End < span.Start:
		return &MatcherError{From: from, Span: span, Reason: reasonEndBeforeStart}
	case span.Start < from:
		return &MatcherError{From: from, Span: span, Reason: reasonBeforeFrom}
	case span.End > length:
		return &MatcherError{From: from, Span: span, Reason: reasonPastEnd}
	case span.End == from:
		return &MatcherError{From: from, Span: span, Reason: reasonNoProgress}
	}
	return nil
}

// Split splits s at every match of m, trimming trailing empty tokens.
func Split(s string, m Matcher) ([]string, error) {
	return Tokenize(s, m, Default)
}

// SplitAll splits s at every match of m, keeping every token.
func SplitAll(s string, m Matcher) ([]string, error) {
	return Tokenize(s, m, All)
}

// SplitN splits s into at most n tokens; the last token holds the unsplit
// rest of the input.
func SplitN(s string, m Matcher, n int) ([]string, error) {
	return Tokenize(s, m, Max(n))
}
