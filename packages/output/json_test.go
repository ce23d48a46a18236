package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uncurl/uncurl/packages/curl"
)

func parseRequest(t *testing.T, command string) *curl.Request {
	t.Helper()
	req, err := curl.Parse(command)
	require.NoError(t, err)
	return req
}

func TestBuildValue_WholeRequest(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com' -H 'A:1' --data name=value --insecure")

	doc, err := RenderJSON(BuildValue(req, "", nil), false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(doc, &decoded))
	assert.Contains(t, decoded, "url")
	assert.Contains(t, decoded, "headers")
	assert.Contains(t, decoded, "data")
	assert.Contains(t, decoded, "flags")
	assert.Contains(t, decoded, "tokens")
}

func TestBuildValue_WithKeys(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com' -H 'A:1' --data name=value --insecure")

	value := BuildValue(req, "", []Field{FieldURL, FieldHeaders})
	subset, ok := value.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, subset, "url")
	assert.Contains(t, subset, "headers")
	assert.NotContains(t, subset, "data")
}

func TestBuildValue_PartOverridesKeys(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com' --data name=value")

	doc, err := RenderJSON(BuildValue(req, PartData, []Field{FieldURL}), false)
	require.NoError(t, err)
	assert.Equal(t, `["name=value"]`, string(doc))
}

func TestBuildValue_AbsentMethodIsNull(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com'")

	doc, err := RenderJSON(BuildValue(req, PartMethod, nil), false)
	require.NoError(t, err)
	assert.Equal(t, "null", string(doc))
}

func TestQuery(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com/a?x=1' -H 'A:1'")

	doc, err := RenderJSON(req, false)
	require.NoError(t, err)

	domain, err := Query(doc, "url.domain")
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain)

	header, err := Query(doc, "headers.0")
	require.NoError(t, err)
	assert.Equal(t, "A:1", header)

	_, err = Query(doc, "nope.nothing")
	require.Error(t, err)
}

func TestParsePartAndField(t *testing.T) {
	part, err := ParsePart("header")
	require.NoError(t, err)
	assert.Equal(t, PartHeader, part)

	_, err = ParsePart("bogus")
	require.Error(t, err)

	field, err := ParseField("tokens")
	require.NoError(t, err)
	assert.Equal(t, FieldTokens, field)

	_, err = ParseField("bogus")
	require.Error(t, err)
}

func TestErrorPayload(t *testing.T) {
	payload := ErrorPayload("parse_error", curl.ErrNotCurl)
	doc, err := RenderJSON(payload, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"parse_error","error":"input is not a curl command"}`, string(doc))
}

func TestRenderYAML(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com' -H 'A:1'")

	doc, err := RenderYAML(BuildValue(req, "", []Field{FieldHeaders}))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "headers:")
	assert.Contains(t, string(doc), "A:1")
}
