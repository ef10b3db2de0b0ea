package match_test

import (
	"regexp"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/runes"

	"github.com/leapstack-labs/splitkit/pkg/match"
	"github.com/leapstack-labs/splitkit/pkg/split"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name     string
		delim    string
		input    string
		from     int
		wantSpan split.Span
		wantOK   bool
	}{
		{
			name:     "first occurrence",
			delim:    ",",
			input:    "a,b,c",
			from:     0,
			wantSpan: split.Span{Start: 1, End: 2},
			wantOK:   true,
		},
		{
			name:     "search resumes after offset",
			delim:    ",",
			input:    "a,b,c",
			from:     2,
			wantSpan: split.Span{Start: 3, End: 4},
			wantOK:   true,
		},
		{
			name:     "multi-byte delimiter span",
			delim:    "::",
			input:    "a::b",
			from:     0,
			wantSpan: split.Span{Start: 1, End: 3},
			wantOK:   true,
		},
		{
			name:   "no occurrence",
			delim:  ",",
			input:  "abc",
			from:   0,
			wantOK: false,
		},
		{
			name:   "query at end of input",
			delim:  ",",
			input:  "a,",
			from:   2,
			wantOK: false,
		},
		{
			name:   "empty delimiter never matches",
			delim:  "",
			input:  "abc",
			from:   0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := match.Literal(tt.delim).Find(tt.input, tt.from)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantSpan, span)
			}
		})
	}
}

func TestAnyOf(t *testing.T) {
	t.Run("matches a single rune from the set", func(t *testing.T) {
		span, ok := match.AnyOf("- ").Find("2013-04-05 14:39", 0)
		require.True(t, ok)
		assert.Equal(t, split.Span{Start: 4, End: 5}, span)
	})

	t.Run("multi-byte rune span covers the whole rune", func(t *testing.T) {
		span, ok := match.AnyOf("é").Find("cafés", 0)
		require.True(t, ok)
		assert.Equal(t, split.Span{Start: 3, End: 5}, span)
	})

	t.Run("empty set never matches", func(t *testing.T) {
		_, ok := match.AnyOf("").Find("abc", 0)
		assert.False(t, ok)
	})

	t.Run("splits the date example", func(t *testing.T) {
		got, err := split.Split("2013-04-05 14:39", match.AnyOf("- "))
		require.NoError(t, err)
		assert.Equal(t, []string{"2013", "04", "05", "14:39"}, got)
	})
}

func TestClass(t *testing.T) {
	digits := match.Class(runes.In(unicode.Digit))

	t.Run("finds the next class rune", func(t *testing.T) {
		span, ok := digits.Find("ab3cd", 0)
		require.True(t, ok)
		assert.Equal(t, split.Span{Start: 2, End: 3}, span)
	})

	t.Run("single rune per match", func(t *testing.T) {
		got, err := split.Split("a12b", digits)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "", "b"}, got)
	})

	t.Run("no class rune present", func(t *testing.T) {
		_, ok := digits.Find("abc", 0)
		assert.False(t, ok)
	})
}

func TestRuns(t *testing.T) {
	digits := match.Runs(runes.In(unicode.Digit))

	t.Run("run is maximal", func(t *testing.T) {
		span, ok := digits.Find("ab1204cd", 0)
		require.True(t, ok)
		assert.Equal(t, split.Span{Start: 2, End: 6}, span)
	})

	t.Run("run reaching end of input", func(t *testing.T) {
		span, ok := digits.Find("ab12", 0)
		require.True(t, ok)
		assert.Equal(t, split.Span{Start: 2, End: 4}, span)
	})

	t.Run("adjacent runs never yield interior empties", func(t *testing.T) {
		got, err := split.Split("a12b345c", digits)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})
}

func TestWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "mixed spaces and tabs",
			input: "one \t two",
			want:  []string{"one", "two"},
		},
		{
			name:  "unicode whitespace in one run",
			input: "a  b",
			want:  []string{"a", "b"},
		},
		{
			name:  "trailing run trimmed in default mode",
			input: "a b  ",
			want:  []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := split.Split(tt.input, match.Whitespace)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPattern(t *testing.T) {
	t.Run("delegates to the regexp", func(t *testing.T) {
		m := match.Pattern(regexp.MustCompile(`,+`))
		got, err := split.Split("a,,b,c", m)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("offsets are relative to the whole input", func(t *testing.T) {
		m := match.Pattern(regexp.MustCompile(`;`))
		span, ok := m.Find("a;b;c", 2)
		require.True(t, ok)
		assert.Equal(t, split.Span{Start: 3, End: 4}, span)
	})

	t.Run("empty-width pattern is rejected by the tokenizer", func(t *testing.T) {
		m := match.Pattern(regexp.MustCompile(`x*`))
		_, err := split.Split("abc", m)

		var matcherErr *split.MatcherError
		require.ErrorAs(t, err, &matcherErr)
	})
}
