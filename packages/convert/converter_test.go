package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCommand_Get(t *testing.T) {
	converter := NewConverter()

	out, err := converter.ConvertCommand("curl 'https://api.example.com/users'")
	require.NoError(t, err)

	assert.Contains(t, out, "### get_users\n")
	assert.Contains(t, out, "# @name get_users\n")
	assert.Contains(t, out, "GET https://api.example.com/users\n")
}

func TestConvertCommand_PostWithBody(t *testing.T) {
	converter := NewConverter(WithNames(false))

	out, err := converter.ConvertCommand("curl 'https://api.example.com/users' -X 'POST' -H 'Content-Type: application/json' --data '{\"name\":\"ada\"}'")
	require.NoError(t, err)

	assert.Equal(t, "POST https://api.example.com/users\nContent-Type: application/json\n\n{\"name\":\"ada\"}\n", out)
}

func TestConvertCommand_DataImpliesPost(t *testing.T) {
	converter := NewConverter(WithNames(false))

	out, err := converter.ConvertCommand("curl 'https://api.example.com/login' -d 'user=bob' -d 'pass=pw'")
	require.NoError(t, err)

	assert.Contains(t, out, "POST https://api.example.com/login\n")
	assert.Contains(t, out, "user=bob&pass=pw\n")
}

func TestConvertCommand_ParseFailure(t *testing.T) {
	converter := NewConverter()

	_, err := converter.ConvertCommand("wget https://example.com")
	require.Error(t, err)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.txt")
	content := "# saved commands\n\n" +
		"curl 'https://example.com/one'\n" +
		"curl 'https://example.com/two' \\\n" +
		"  -H 'A: 1'\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	converter := NewConverter(WithNames(false))
	out, err := converter.ConvertFile(path)
	require.NoError(t, err)

	assert.Contains(t, out, "# Generated from curl commands\n")
	assert.Contains(t, out, "GET https://example.com/one\n")
	assert.Contains(t, out, "GET https://example.com/two\n")
	assert.Contains(t, out, "A: 1\n")
}

func TestConvertFile_Missing(t *testing.T) {
	converter := NewConverter()
	_, err := converter.ConvertFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}
