// Package schema validates request data payloads against a JSON Schema
// document.
package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/uncurl/uncurl/packages/curl"
	"github.com/xeipuuv/gojsonschema"
)

// Result is the validation outcome for one payload fragment.
type Result struct {
	Payload string   `json:"payload"`
	Valid   bool     `json:"valid"`
	Skipped bool     `json:"skipped,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Validator checks payloads against one schema file.
type Validator struct {
	schema gojsonschema.JSONLoader
}

// NewValidator loads a JSON Schema from path.
func NewValidator(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return &Validator{schema: gojsonschema.NewBytesLoader(data)}, nil
}

// ValidateRequest validates every data payload of a parsed request.
// Payloads that are not JSON documents (form fields like name=value) are
// reported as skipped rather than failed.
func (v *Validator) ValidateRequest(req *curl.Request) ([]Result, error) {
	results := make([]Result, 0, len(req.Data))
	for _, payload := range req.Data {
		result, err := v.validatePayload(payload)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (v *Validator) validatePayload(payload string) (Result, error) {
	if !json.Valid([]byte(payload)) {
		return Result{Payload: payload, Skipped: true}, nil
	}

	documentLoader := gojsonschema.NewBytesLoader([]byte(payload))
	outcome, err := gojsonschema.Validate(v.schema, documentLoader)
	if err != nil {
		return Result{}, fmt.Errorf("schema validation error: %w", err)
	}

	result := Result{Payload: payload, Valid: outcome.Valid()}
	for _, desc := range outcome.Errors() {
		result.Errors = append(result.Errors, desc.String())
	}
	return result, nil
}

// AllValid reports whether no payload failed validation; skipped payloads
// do not count against it.
func AllValid(results []Result) bool {
	for _, result := range results {
		if !result.Skipped && !result.Valid {
			return false
		}
	}
	return true
}
