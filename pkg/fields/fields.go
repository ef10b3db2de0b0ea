// Package fields builds line-oriented field extraction on top of pkg/split:
// whitespace-separated fields, naive CSV lines, and key=value log fields.
// Each helper pins down one Limit mode of the underlying tokenizer.
package fields

import (
	"github.com/leapstack-labs/splitkit/pkg/match"
	"github.com/leapstack-labs/splitkit/pkg/split"
)

// Fields splits line into whitespace-separated fields. Runs of whitespace
// count as a single separator, and leading or trailing whitespace yields
// no empty fields. An all-whitespace or empty line yields no fields.
func Fields(line string) []string {
	// The built-in matchers honor the Find contract, so Tokenize cannot fail.
	tokens, _ := split.Split(line, match.Whitespace)

	// Default mode only trims trailing empties; a line with leading
	// whitespace starts with one empty token.
	if len(tokens) > 0 && tokens[0] == "" {
		tokens = tokens[1:]
	}
	return tokens
}

// CSVLine splits one comma-separated line, keeping every field including
// trailing empties: in CSV a trailing comma means a present, empty field.
// Quoting is not interpreted; use encoding/csv for full CSV input.
func CSVLine(line string) []string {
	tokens, _ := split.SplitAll(line, match.Literal(","))
	return tokens
}

// KeyValue splits field at the first '=' into a key and a value. The value
// keeps any further '=' runes verbatim. Fields without '=' or with an
// empty key report ok == false.
func KeyValue(field string) (key, value string, ok bool) {
	parts, _ := split.SplitN(field, match.Literal("="), 2)
	if len(parts) < 2 || parts[0] == "" {
		return field, "", false
	}
	return parts[0], parts[1], true
}

// LogFields splits a log line into whitespace-separated fields and collects
// key=value pairs. Fields that are not key=value pairs are returned in
// order as bare fields. pairs is nil when the line holds no pairs.
func LogFields(line string) (pairs map[string]string, bare []string) {
	for _, f := range Fields(line) {
		k, v, ok := KeyValue(f)
		if !ok {
			bare = append(bare, f)
			continue
		}
		if pairs == nil {
			pairs = make(map[string]string)
		}
		pairs[k] = v
	}
	return pairs, bare
}
