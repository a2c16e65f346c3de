package classify

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Value is a parsed non-negative integer.
type Value = uint64

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Tokenize trims leading and trailing whitespace and byte order marks once
// and splits the rest on every single space. Consecutive spaces produce empty
// tokens, which then fail ParseValue. An empty (post-trim) line yields nil.
func Tokenize(line string) []string {
	trimmed := strings.TrimFunc(line, isTrimmed)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, " ")
}

// isTrimmed matches Unicode white space and the byte order mark.
func isTrimmed(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ParseValue converts a token to a Value.
// Only tokens matching ^[0-9]+$ are accepted: signs, decimal points,
// exponents and empty tokens all fail with *FormatError.
func ParseValue(token string) (Value, error) {
	return parseAt(token, 0)
}

func parseAt(token string, index int) (Value, error) {
	if !digitsPattern.MatchString(token) {
		return 0, &FormatError{Token: token, Index: index}
	}
	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, &FormatError{Token: token, Index: index, Err: err}
	}
	return v, nil
}

// ParseLine tokenizes line and parses every token, stopping at the first
// token that fails.
func ParseLine(line string) ([]Value, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, nil
	}
	values := make([]Value, 0, len(tokens))
	for i, tok := range tokens {
		v, err := parseAt(tok, i)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
