package curl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ConcreteScenario(t *testing.T) {
	req, err := Parse("curl 'https://example.com' -H 'A:1' --data name=value --insecure")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", req.URL.String())
	assert.Empty(t, req.Method)
	assert.Equal(t, []string{"A:1"}, req.Headers)
	assert.Equal(t, []string{"name=value"}, req.Data)
	assert.Equal(t, []string{"--insecure"}, req.Flags)
	assert.Len(t, req.Tokens, 4)
}

func TestParse_LastMethodWins(t *testing.T) {
	req, err := Parse("curl 'https://example.com' -X 'GET' -H 'a: 1' -X 'POST'")
	require.NoError(t, err)
	assert.Equal(t, "POST", req.Method)
}

func TestParse_HeaderOrderPreserved(t *testing.T) {
	req, err := Parse("curl 'https://example.com' -H 'H1: a' -H 'H2: b' -H 'H3: c' -H 'H1: a'")
	require.NoError(t, err)
	assert.Equal(t, []string{"H1: a", "H2: b", "H3: c", "H1: a"}, req.Headers)
}

func TestParse_DataOrderPreserved(t *testing.T) {
	req, err := Parse("curl 'https://example.com' -d 'a=1' --data-raw 'b=2' -d 'a=1'")
	require.NoError(t, err)
	assert.Equal(t, []string{"a=1", "b=2", "a=1"}, req.Data)
}

func TestParse_FlagValuesDroppedFromSummary(t *testing.T) {
	req, err := Parse("curl 'https://example.com' --cookie 'session=abc' --verbose")
	require.NoError(t, err)

	// Only identifiers survive the fold; the token list keeps the value.
	assert.Equal(t, []string{"--cookie", "--verbose"}, req.Flags)
	require.Len(t, req.Tokens, 3)
	assert.Equal(t, "session=abc", req.Tokens[1].DataString())
}

func TestParse_NotCurl(t *testing.T) {
	_, err := Parse("echo hello")
	assert.ErrorIs(t, err, ErrNotCurl)
}

func TestFromTokens_MissingURL(t *testing.T) {
	method, err := newToken("-X", "GET")
	require.NoError(t, err)

	_, err = FromTokens([]Token{method})
	assert.ErrorIs(t, err, ErrMissingURL)
}

func TestFromTokens_EmptyLists(t *testing.T) {
	u, err := ParseURL("https://example.com")
	require.NoError(t, err)

	req, err := FromTokens([]Token{newURLToken(u)})
	require.NoError(t, err)
	assert.NotNil(t, req.Headers)
	assert.Empty(t, req.Headers)
	assert.NotNil(t, req.Flags)
	assert.Empty(t, req.Data)
}

func TestSyntaxError_TruncatesFragment(t *testing.T) {
	err := &SyntaxError{Context: "quoted argument", Fragment: strings.Repeat("x", 200)}
	assert.Contains(t, err.Error(), "quoted argument")
	assert.LessOrEqual(t, len(err.Error()), 120)
}
