// Package args splits raw command input into arguments. Spaces separate
// arguments unless they sit inside single or double quotes; a quote loses its
// special meaning when escaped with a backslash, and that backslash is removed
// from the output. Splitting never fails: an unmatched quote simply keeps the
// rest of the input in one argument.
package args

import (
	"strings"
	"unicode"
)

// Split splits input into arguments on unquoted whitespace. Quote characters
// that are not escaped are removed from the output; backslashes that escape a
// quote are removed as well. Every argument is trimmed of surrounding
// whitespace. An empty input yields a single empty argument; callers that
// treat "no input" specially should check for the empty string before calling.
func Split(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return []string{""}
	}

	runes := []rune(input)
	var out []string
	inQuote := false
	begin := 0

	for i, c := range runes {
		if isQuote(c) && (i == 0 || runes[i-1] != '\\') {
			inQuote = !inQuote
		}
		if (unicode.IsSpace(c) && !inQuote) || i == len(runes)-1 {
			out = append(out, strings.TrimSpace(string(runes[begin:i+1])))
			begin = i + 1
		}
	}

	for i, token := range out {
		out[i] = stripQuotes(token)
	}
	return out
}

// stripQuotes removes backslashes that escape a quote and quotes that are not
// escaped. Escaped quotes stay; standalone backslashes stay.
func stripQuotes(token string) string {
	runes := []rune(token)
	var b strings.Builder
	for k, c := range runes {
		if c == '\\' && k != len(runes)-1 && isQuote(runes[k+1]) {
			continue
		}
		if isQuote(c) && (k == 0 || runes[k-1] != '\\') {
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func isQuote(c rune) bool {
	return c == '"' || c == '\''
}
