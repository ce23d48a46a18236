package curl

import (
	"errors"
	"fmt"
)

// ErrNotCurl reports input that does not begin with the curl command word.
var ErrNotCurl = errors.New("input is not a curl command")

// ErrMissingURL reports a token sequence with no URL token.
var ErrMissingURL = errors.New("missing target URL")

// SyntaxError is a parse failure carrying the offending input fragment.
type SyntaxError struct {
	Context  string
	Fragment string
}

func (e *SyntaxError) Error() string {
	fragment := e.Fragment
	if len(fragment) > 40 {
		fragment = fragment[:40] + "..."
	}
	return fmt.Sprintf("cannot parse %s at %q", e.Context, fragment)
}

// Request is the canonical summary of a parsed curl invocation. Headers,
// Data, and Flags preserve encounter order and duplicates; Tokens is the
// complete ordered token sequence and the authoritative record. Flag
// values captured during parsing survive only on Tokens.
type Request struct {
	URL     URL      `json:"url"`
	Method  string   `json:"method,omitempty"`
	Headers []string `json:"headers"`
	Data    []string `json:"data"`
	Flags   []string `json:"flags"`
	Tokens  []Token  `json:"tokens"`
}

// FromTokens folds a token sequence into a Request. A missing URL token is
// the single hard failure; every method token overwrites the previous one
// so the last occurrence wins, matching repeated command-line flags.
func FromTokens(tokens []Token) (*Request, error) {
	var target *URL
	request := &Request{
		Headers: []string{},
		Data:    []string{},
		Flags:   []string{},
		Tokens:  tokens,
	}

	for _, token := range tokens {
		switch token.Kind {
		case KindURL:
			target = token.URL
		case KindMethod:
			request.Method = token.DataString()
		case KindHeader:
			request.Headers = append(request.Headers, token.DataString())
		case KindData:
			request.Data = append(request.Data, token.DataString())
		case KindFlag:
			request.Flags = append(request.Flags, token.Identifier)
		}
	}

	if target == nil {
		return nil, ErrMissingURL
	}
	request.URL = *target
	return request, nil
}

// Parse turns a raw curl invocation into a Request.
func Parse(input string) (*Request, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return FromTokens(tokens)
}
