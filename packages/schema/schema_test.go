package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uncurl/uncurl/packages/curl"
)

const userSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func newValidator(t *testing.T) *Validator {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(userSchema), 0644))

	validator, err := NewValidator(path)
	require.NoError(t, err)
	return validator
}

func TestValidateRequest(t *testing.T) {
	validator := newValidator(t)

	req, err := curl.Parse(`curl 'https://example.com' --data '{"name":"ada"}' --data '{"age":3}' --data name=value`)
	require.NoError(t, err)

	results, err := validator.ValidateRequest(req)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Valid)
	assert.Empty(t, results[0].Errors)

	assert.False(t, results[1].Valid)
	assert.NotEmpty(t, results[1].Errors)

	// Form payloads are skipped, not failed.
	assert.True(t, results[2].Skipped)

	assert.False(t, AllValid(results))
}

func TestAllValid(t *testing.T) {
	assert.True(t, AllValid(nil))
	assert.True(t, AllValid([]Result{{Valid: true}, {Skipped: true}}))
	assert.False(t, AllValid([]Result{{Valid: true}, {Valid: false}}))
}

func TestNewValidator_MissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
