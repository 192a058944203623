package completion

import (
	"strings"
	"unicode"
)

// The three characters that may wrap a value. Requote prefers them in
// this order. Quill values have no escape character, so a character
// already present in the value disqualifies it as a wrapper.
var quoteChars = []rune{'"', '\'', '`'}

// Unquote strips a user-typed quote character from a partial token so
// matching can operate on the bare value. If partial starts with one
// of the quote characters it is removed, along with the matching
// trailing character when present. The returned quote rune is 0 when
// the token was not quoted.
//
// The original quote choice is intentionally discarded by callers:
// Requote recomputes the wrapper from the replacement value's content.
func Unquote(partial string) (rune, string) {
	if partial == "" {
		return 0, partial
	}

	quote := rune(partial[0])
	if !isQuoteChar(quote) {
		return 0, partial
	}

	unquoted := partial[1:]
	if strings.HasSuffix(unquoted, string(quote)) {
		unquoted = unquoted[:len(unquoted)-1]
	}
	return quote, unquoted
}

// Unescape interprets backslash as a generic escape character: the
// backslash is dropped and the following character is kept literally.
// A trailing lone backslash is kept as-is.
func Unescape(value string) string {
	if !strings.ContainsRune(value, '\\') {
		return value
	}

	var b strings.Builder
	b.Grow(len(value))
	escaped := false
	for _, r := range value {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	if escaped {
		b.WriteRune('\\')
	}
	return b.String()
}

// Requote wraps a replacement value in a quote character when the
// value would otherwise break the line. The value is first unescaped
// to its literal form. Whitespace forces quoting; every quote
// character literally present in the value is removed from the
// candidate set because it cannot wrap itself. The first surviving
// candidate (preferring " then ' then `) wraps the value.
//
// When the value contains all three quote characters there is no
// valid wrapping without an escape mechanism; the literal value is
// returned unwrapped. Known limitation.
func Requote(rawValue string) string {
	value := Unescape(rawValue)

	candidates := make([]rune, len(quoteChars))
	copy(candidates, quoteChars)

	shouldQuote := false
	for _, r := range value {
		if unicode.IsSpace(r) {
			shouldQuote = true
			continue
		}
		if isQuoteChar(r) {
			shouldQuote = true
			candidates = removeRune(candidates, r)
		}
	}

	if !shouldQuote || len(candidates) == 0 {
		return value
	}
	return string(candidates[0]) + value + string(candidates[0])
}

func isQuoteChar(r rune) bool {
	for _, q := range quoteChars {
		if r == q {
			return true
		}
	}
	return false
}

func removeRune(runes []rune, r rune) []rune {
	for i, q := range runes {
		if q == r {
			return append(runes[:i], runes[i+1:]...)
		}
	}
	return runes
}
