package loaders

import (
	"bytes"
	"encoding/json"
)

// DecodeJSON decodes a JSON document whose top level is an object.
// Whitespace-only files export nothing.
func DecodeJSON(path string, data []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var exports map[string]interface{}
	if err := json.Unmarshal(data, &exports); err != nil {
		return nil, invalid(err, path, "json")
	}
	return exports, nil
}
