package args

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain words", "ab cde", []string{"ab", "cde"}},
		{"double quoted", `ab cde "fgh ijk"`, []string{"ab", "cde", "fgh ijk"}},
		{"single quoted", "ab 'cd ef'", []string{"ab", "cd ef"}},
		{"escaped quotes survive", `\"a b\"`, []string{`"a`, `b"`}},
		{"single word", "ping", []string{"ping"}},
		{"empty input", "", []string{""}},
		{"whitespace only", "   ", []string{""}},
		{"standalone backslash", `a\b`, []string{`a\b`}},
		{"unmatched quote swallows rest", `a "b c`, []string{"a", "b c"}},
		{"surrounding space trimmed", "  ab cde  ", []string{"ab", "cde"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input))
		})
	}
}

// Escaped quotes must not toggle quoting, so the concatenation of the output
// keeps every literal quote character.
func TestSplitEscapedQuoteKeepsLiterals(t *testing.T) {
	got := Split(`\"a b\"`)
	joined := strings.Join(got, "")
	assert.Equal(t, 2, strings.Count(joined, `"`))
}

// Re-splitting a single already-split token without quotes yields the token
// unchanged.
func TestSplitIdempotent(t *testing.T) {
	for _, token := range []string{"ping", "fgh ijk", `a\b`} {
		first := Split(token)
		rejoined := strings.Join(first, " ")
		assert.Equal(t, first, Split(rejoined))
	}
}
