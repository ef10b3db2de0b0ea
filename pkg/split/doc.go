// Package split implements delimiter-driven string tokenization with
// limit-controlled splitting semantics.
//
// The package contains:
//   - Tokenize: the core splitting operation
//   - Matcher: the pluggable capability locating delimiter occurrences
//   - Limit: a three-way choice between default, unbounded, and bounded splits
//
// Tokenize is a pure function: it never mutates its input, holds no shared
// state, and is safe to call concurrently on independent inputs.
//
// # Basic Usage
//
//	tokens, err := split.Split("a,b,c", match.Literal(","))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// tokens == []string{"a", "b", "c"}
//
// # Limits
//
// The three limit modes differ only in how the scan ends:
//
//   - split.Default stops at the last match and trims trailing empty tokens.
//   - split.All stops at the last match and keeps every token.
//   - split.Max(n) emits at most n tokens; the final token absorbs the
//     rest of the input without further scanning.
//
// The Golden Rule: pkg/split imports ONLY stdlib. Concrete matchers live in
// pkg/match and depend on split, not the reverse.
package split
