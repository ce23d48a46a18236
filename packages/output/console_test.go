package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleFormatter_Summary(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com' -H 'A:1' --data name=value --insecure")

	var buf bytes.Buffer
	formatter := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))
	formatter.Summary(req)

	out := buf.String()
	assert.Contains(t, out, "URL: https://example.com\n")
	assert.Contains(t, out, "Method: (not specified)\n")
	assert.Contains(t, out, "Headers:\n  - A:1\n")
	assert.Contains(t, out, "Data:\n  - name=value\n")
	assert.Contains(t, out, "Flags:\n  - --insecure\n")
}

func TestConsoleFormatter_SummaryPlaceholders(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com'")

	var buf bytes.Buffer
	formatter := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))
	formatter.Summary(req)

	out := buf.String()
	assert.Contains(t, out, "Headers: (none)\n")
	assert.Contains(t, out, "Data: (none)\n")
	assert.Contains(t, out, "Flags: (none)\n")
}

func TestConsoleFormatter_Part(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com' -X 'POST' -H 'A:1' -H 'B:2'")

	var buf bytes.Buffer
	formatter := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	formatter.Part(req, PartMethod)
	assert.Equal(t, "POST\n", buf.String())

	buf.Reset()
	formatter.Part(req, PartHeader)
	assert.Equal(t, "A:1\nB:2\n", buf.String())

	buf.Reset()
	formatter.Part(req, PartData)
	assert.Equal(t, "(no data payload)\n", buf.String())

	buf.Reset()
	formatter.Part(req, PartFlag)
	assert.Equal(t, "(no flags)\n", buf.String())

	buf.Reset()
	formatter.Part(req, PartURL)
	assert.Equal(t, "https://example.com\n", buf.String())
}

func TestConsoleFormatter_PartMethodPlaceholder(t *testing.T) {
	req := parseRequest(t, "curl 'https://example.com'")

	var buf bytes.Buffer
	formatter := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))
	formatter.Part(req, PartMethod)
	require.Equal(t, "(method not specified)\n", buf.String())
}
