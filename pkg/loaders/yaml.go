package loaders

import "gopkg.in/yaml.v3"

// DecodeYAML decodes a YAML document whose top level is a mapping.
func DecodeYAML(path string, data []byte) (map[string]interface{}, error) {
	var exports map[string]interface{}
	if err := yaml.Unmarshal(data, &exports); err != nil {
		return nil, invalid(err, path, "yaml")
	}
	return exports, nil
}
