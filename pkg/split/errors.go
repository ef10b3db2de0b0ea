package split

import "fmt"

// MatcherError represents a matcher result violating the Find contract.
// A broken matcher cannot be worked around, so the scan aborts immediately
// and no partial token sequence is returned.
type MatcherError struct {
	From   int    // offset the matcher was queried with
	Span   Span   // span the matcher returned
	Reason string // which contract rule was violated
}

func (e *MatcherError) Error() string {
	return fmt.Sprintf("split: invalid matcher result at offset %d: span [%d,%d): %s",
		e.From, e.Span.Start, e.Span.End, e.Reason)
}

// LimitError represents a bounded limit outside the documented domain.
// It is reported before any scanning begins.
type LimitError struct {
	Max int // the rejected bound
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("split: invalid limit max(%d): bounded limits must be at least 1", e.Max)
}

// Matcher contract violation reasons.
const (
	reasonEndBeforeStart = "span end precedes span start"
	reasonBeforeFrom     = "match starts before the search offset"
	reasonPastEnd        = "match extends past the end of the input"
	reasonNoProgress     = "zero-width match makes no forward progress"
)
