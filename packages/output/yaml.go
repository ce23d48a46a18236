package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// RenderYAML serializes a value as YAML. The value is round-tripped
// through JSON first so YAML output keeps the same field names and
// custom marshaling as the JSON view.
func RenderYAML(value any) ([]byte, error) {
	doc, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}
