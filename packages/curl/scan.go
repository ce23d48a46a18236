package curl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// curlWord is the literal command prefix every parsable input must carry.
const curlWord = "curl"

// IsCurlCommand reports whether the input, after leading whitespace, begins
// with the curl command word. The check is case-insensitive.
func IsCurlCommand(input string) bool {
	trimmed := skipSpace(input)
	if len(trimmed) < len(curlWord) {
		return false
	}
	return strings.EqualFold(trimmed[:len(curlWord)], curlWord)
}

// StripCurlPrefix removes the leading curl command word, case-insensitively,
// if present. Input that does not carry the prefix is returned left-trimmed
// and otherwise unchanged.
func StripCurlPrefix(input string) string {
	trimmed := skipSpace(input)
	if len(trimmed) >= len(curlWord) && strings.EqualFold(trimmed[:len(curlWord)], curlWord) {
		return trimmed[len(curlWord):]
	}
	return trimmed
}

func skipSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// skipContinuation consumes one backslash line continuation, optionally
// surrounded by whitespace. Without a backslash the input is returned
// untouched so the next parser sees it as written.
func skipContinuation(s string) string {
	trimmed := skipSpace(s)
	if strings.HasPrefix(trimmed, `\`) {
		return skipSpace(trimmed[1:])
	}
	return s
}

// startsWithSpace reports whether the input begins with at least one
// whitespace rune. Parsers that require separating whitespace check this
// before handing off to a value parser, which skips it on its own.
func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

func parseQuotedWith(input string, quote byte, context string) (string, string, error) {
	s := skipSpace(input)
	if len(s) == 0 || s[0] != quote {
		return "", "", &SyntaxError{Context: context, Fragment: s}
	}
	s = s[1:]
	end := strings.IndexByte(s, quote)
	if end < 0 {
		return "", "", &SyntaxError{Context: context, Fragment: s}
	}
	return s[:end], skipSpace(s[end+1:]), nil
}

// parseDoubleQuoted captures the contents of a double-quoted argument and
// skips trailing whitespace. Quote contents are not escape-aware.
func parseDoubleQuoted(input string) (string, string, error) {
	return parseQuotedWith(input, '"', "double quoted argument")
}

// parseSingleQuoted is parseDoubleQuoted for single quotes.
func parseSingleQuoted(input string) (string, string, error) {
	return parseQuotedWith(input, '\'', "single quoted argument")
}

// parseUnquoted captures a maximal run of non-whitespace, non-backslash
// characters. Used for bare values such as name=value or @file.json.
func parseUnquoted(input string) (string, string, error) {
	s := skipSpace(input)
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) || r == '\\' {
			break
		}
		i += size
	}
	if i == 0 {
		return "", "", &SyntaxError{Context: "unquoted argument", Fragment: s}
	}
	return s[:i], s[i:], nil
}

// parseQuoted runs both quoted parsers and keeps whichever captured more
// content; the double-quoted result wins length ties. Quote characters
// inside a quoted string are not escape-aware beyond this heuristic.
func parseQuoted(input string) (string, string, error) {
	dblVal, dblRest, dblErr := parseDoubleQuoted(input)
	sglVal, sglRest, sglErr := parseSingleQuoted(input)
	switch {
	case dblErr == nil && sglErr == nil:
		if len(dblVal) >= len(sglVal) {
			return dblVal, dblRest, nil
		}
		return sglVal, sglRest, nil
	case dblErr == nil:
		return dblVal, dblRest, nil
	case sglErr == nil:
		return sglVal, sglRest, nil
	default:
		return "", "", &SyntaxError{Context: "quoted argument", Fragment: skipSpace(input)}
	}
}

// parseArgValue captures one argument value: double-quoted, then
// single-quoted, then bare, first success wins.
func parseArgValue(input string) (string, string, error) {
	if value, rest, err := parseDoubleQuoted(input); err == nil {
		return value, rest, nil
	}
	if value, rest, err := parseSingleQuoted(input); err == nil {
		return value, rest, nil
	}
	return parseUnquoted(input)
}
