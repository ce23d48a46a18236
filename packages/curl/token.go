package curl

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies one of the five token categories of a curl invocation.
type Kind int

const (
	KindMethod Kind = iota
	KindURL
	KindHeader
	KindData
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindURL:
		return "url"
	case KindHeader:
		return "header"
	case KindData:
		return "data"
	case KindFlag:
		return "flag"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalJSON renders the kind as its lowercase name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Token is one classified unit of a curl invocation. Identifier holds the
// flag spelling (canonicalized to the short form for method/header/data
// tokens), Data the captured value when one exists, and URL the decomposed
// target for KindURL tokens.
type Token struct {
	Kind       Kind    `json:"kind"`
	Identifier string  `json:"identifier,omitempty"`
	Data       *string `json:"data,omitempty"`
	URL        *URL    `json:"url,omitempty"`
}

const urlTokenIdentifier = "--url"

// newToken classifies identifier against the method/header/data tables and
// builds the corresponding token. Method and header values are trimmed,
// data payloads are kept verbatim because payloads may be
// whitespace-significant. An empty (post-trim) parameter is rejected.
func newToken(identifier, param string) (Token, error) {
	if strings.TrimSpace(param) == "" {
		return Token{}, fmt.Errorf("empty value for %s", identifier)
	}
	switch {
	case IsMethodFlag(identifier):
		return Token{Kind: KindMethod, Identifier: "-X", Data: stringPtr(strings.TrimSpace(param))}, nil
	case IsHeaderFlag(identifier):
		return Token{Kind: KindHeader, Identifier: "-H", Data: stringPtr(strings.TrimSpace(param))}, nil
	case IsDataFlag(identifier):
		return Token{Kind: KindData, Identifier: "-d", Data: stringPtr(param)}, nil
	}
	return Token{}, fmt.Errorf("unclassified identifier %s", identifier)
}

func newFlagToken(identifier string, value *string) (Token, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return Token{}, fmt.Errorf("empty flag identifier")
	}
	return Token{Kind: KindFlag, Identifier: trimmed, Data: value}, nil
}

func newURLToken(u URL) Token {
	return Token{Kind: KindURL, Identifier: urlTokenIdentifier, URL: &u}
}

// DataString returns the captured value, or the empty string when the
// token carries none.
func (t Token) DataString() string {
	if t.Data == nil {
		return ""
	}
	return *t.Data
}

func stringPtr(s string) *string {
	return &s
}
