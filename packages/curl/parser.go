package curl

import (
	"fmt"
	"strings"
)

// ParseMethod consumes a method flag (-X / --request) and its value.
func ParseMethod(input string) (Token, string, error) {
	return parseValued(input, methodFlagAliases)
}

// ParseHeader consumes a header flag (-H / --header) and its raw
// "Name: value" text.
func ParseHeader(input string) (Token, string, error) {
	return parseValued(input, headerFlagAliases)
}

// ParseData consumes a data/payload flag and its payload fragment.
func ParseData(input string) (Token, string, error) {
	return parseValued(input, dataFlagAliases)
}

// parseValued matches one alias from the table, requires separating
// whitespace, and captures one argument value.
func parseValued(input string, aliases []string) (Token, string, error) {
	s := skipContinuation(input)
	s = skipSpace(s)

	identifier, afterID, err := matchAlias(s, aliases)
	if err != nil {
		return Token{}, "", err
	}
	if !startsWithSpace(afterID) {
		return Token{}, "", fmt.Errorf("%s: missing value separator", identifier)
	}
	value, rest, err := parseArgValue(afterID)
	if err != nil {
		return Token{}, "", fmt.Errorf("%s: %w", identifier, err)
	}
	token, err := newToken(identifier, value)
	if err != nil {
		return Token{}, "", err
	}
	return token, rest, nil
}

func matchAlias(s string, aliases []string) (string, string, error) {
	for _, alias := range aliases {
		if strings.HasPrefix(s, alias) {
			return alias, s[len(alias):], nil
		}
	}
	return "", "", &SyntaxError{Context: "flag identifier", Fragment: s}
}

// ParseFlag consumes any -/-- prefixed identifier that is not a
// method/header/data flag. Identifiers in the value-required table must be
// followed by whitespace and a value; a value that itself looks like a
// flag is refused.
func ParseFlag(input string) (Token, string, error) {
	s := skipContinuation(input)
	s = skipSpace(s)

	identifier, rest, err := scanFlagIdentifier(s)
	if err != nil {
		return Token{}, "", err
	}
	if ExpectsValue(identifier) {
		// Yield to the dedicated method/header/data parsers.
		return Token{}, "", fmt.Errorf("%s is not a bare flag", identifier)
	}

	var value *string
	if RequiresValue(identifier) {
		if !startsWithSpace(rest) {
			return Token{}, "", fmt.Errorf("%s requires a value", identifier)
		}
		afterSpace := skipSpace(rest)
		if strings.HasPrefix(afterSpace, "-") {
			return Token{}, "", fmt.Errorf("%s requires a value, found flag", identifier)
		}
		captured, afterValue, err := parseArgValue(afterSpace)
		if err != nil {
			return Token{}, "", fmt.Errorf("%s: %w", identifier, err)
		}
		value = stringPtr(captured)
		rest = afterValue
	}

	token, err := newFlagToken(identifier, value)
	if err != nil {
		return Token{}, "", err
	}
	return token, rest, nil
}

// scanFlagIdentifier captures "-" or "--" followed by at least one
// alphanumeric, "-", or "_" character.
func scanFlagIdentifier(s string) (string, string, error) {
	i := 0
	if i >= len(s) || s[i] != '-' {
		return "", "", &SyntaxError{Context: "flag identifier", Fragment: s}
	}
	i++
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && isFlagChar(s[i]) {
		i++
	}
	if i == start {
		return "", "", &SyntaxError{Context: "flag identifier", Fragment: s}
	}
	return s[:i], s[i:], nil
}

func isFlagChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}

// ParseAny tries the method, header, data, and generic flag parsers in
// that fixed order; the first success wins.
func ParseAny(input string) (Token, string, error) {
	if token, rest, err := ParseMethod(input); err == nil {
		return token, rest, nil
	}
	if token, rest, err := ParseHeader(input); err == nil {
		return token, rest, nil
	}
	if token, rest, err := ParseData(input); err == nil {
		return token, rest, nil
	}
	return ParseFlag(input)
}

// parseURLToken captures the quoted URL argument and decomposes it.
func parseURLToken(input string) (Token, string, error) {
	raw, rest, err := parseQuoted(input)
	if err != nil {
		return Token{}, "", fmt.Errorf("url argument: %w", err)
	}
	u, err := ParseURL(raw)
	if err != nil {
		return Token{}, "", err
	}
	return newURLToken(u), rest, nil
}

// Tokenize validates the curl prefix, parses exactly one URL token, then
// applies ParseAny until no further token matches. Unmatched trailing text
// is not an error: parsing simply stops there.
func Tokenize(input string) ([]Token, error) {
	if !IsCurlCommand(input) {
		return nil, ErrNotCurl
	}
	rest := StripCurlPrefix(input)

	urlToken, rest, err := parseURLToken(rest)
	if err != nil {
		return nil, err
	}

	tokens := []Token{urlToken}
	for {
		token, remainder, err := ParseAny(rest)
		if err != nil {
			break
		}
		tokens = append(tokens, token)
		rest = remainder
	}
	return tokens, nil
}
