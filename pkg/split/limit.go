package split

import "fmt"

// limitMode selects one of the three splitting modes.
type limitMode int

const (
	modeDefault limitMode = iota // unlimited, trailing empty tokens trimmed
	modeAll                      // unlimited, every token kept
	modeMax                      // at most max tokens
)

// Limit controls how many tokens Tokenize emits and whether trailing empty
// tokens are trimmed. Use the Default and All values or the Max constructor;
// the zero value is Default.
type Limit struct {
	mode limitMode
	max  int
}

// Splitting limits.
var (
	// Default splits at every match and trims trailing empty tokens.
	Default = Limit{mode: modeDefault}

	// All splits at every match and keeps every token, trailing empties
	// included.
	All = Limit{mode: modeAll}
)

// Max returns a limit emitting at most n tokens. The final token absorbs
// the remaining input verbatim, delimiters included. n must be at least 1;
// Tokenize rejects other values with a LimitError.
func Max(n int) Limit {
	return Limit{mode: modeMax, max: n}
}

// validate reports a LimitError for bounded limits outside the documented
// domain.
func (l Limit) validate() error {
	if l.mode == modeMax && l.max < 1 {
		return &LimitError{Max: l.max}
	}
	return nil
}

// String returns a readable form of the limit.
func (l Limit) String() string {
	switch l.mode {
	case modeAll:
		return "all"
	case modeMax:
		return fmt.Sprintf("max(%d)", l.max)
	default:
		return "default"
	}
}
