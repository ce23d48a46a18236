// Package output renders parsed curl requests for the CLI.
//
// It provides:
//   - A colorized console summary and single-part views
//   - JSON and YAML rendering of the whole request or a field subset
//   - gjson path queries over the rendered JSON document
//   - Structured {code, error} payloads for machine-readable failures
package output
