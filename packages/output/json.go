package output

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/uncurl/uncurl/packages/curl"
)

// Field names one top-level key of the JSON object view.
type Field string

const (
	FieldURL     Field = "url"
	FieldMethod  Field = "method"
	FieldHeaders Field = "headers"
	FieldData    Field = "data"
	FieldFlags   Field = "flags"
	FieldTokens  Field = "tokens"
)

// ParseField validates a field name from the CLI.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldURL, FieldMethod, FieldHeaders, FieldData, FieldFlags, FieldTokens:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown field %q (expected url, method, headers, data, flags, or tokens)", s)
}

// BuildValue assembles the value to serialize: a single part when one is
// selected (part overrides keys), a keyed subset when keys are given, or
// the whole request.
func BuildValue(req *curl.Request, part Part, keys []Field) any {
	if part != "" {
		return partValue(req, part)
	}
	if len(keys) > 0 {
		subset := make(map[string]any, len(keys))
		for _, key := range keys {
			subset[string(key)] = fieldValue(req, key)
		}
		return subset
	}
	return req
}

func partValue(req *curl.Request, part Part) any {
	switch part {
	case PartMethod:
		if req.Method == "" {
			return nil
		}
		return req.Method
	case PartHeader:
		return req.Headers
	case PartData:
		return req.Data
	case PartFlag:
		return req.Flags
	case PartURL:
		return req.URL
	}
	return nil
}

func fieldValue(req *curl.Request, field Field) any {
	switch field {
	case FieldURL:
		return req.URL
	case FieldMethod:
		if req.Method == "" {
			return nil
		}
		return req.Method
	case FieldHeaders:
		return req.Headers
	case FieldData:
		return req.Data
	case FieldFlags:
		return req.Flags
	case FieldTokens:
		return req.Tokens
	}
	return nil
}

// RenderJSON serializes a value, optionally pretty-printed.
func RenderJSON(value any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(value, "", "  ")
	}
	return json.Marshal(value)
}

// Query selects one value from a rendered JSON document by gjson path,
// e.g. "url.domain" or "headers.0".
func Query(doc []byte, path string) (string, error) {
	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return "", fmt.Errorf("no value at path %q", path)
	}
	return result.String(), nil
}

// ErrorPayload is the structured failure surface for machine-readable
// output modes.
func ErrorPayload(code string, err error) map[string]string {
	return map[string]string{
		"code":  code,
		"error": err.Error(),
	}
}
