package loaders

import "github.com/pelletier/go-toml/v2"

// DecodeTOML decodes a TOML document; its top-level table is the export set.
func DecodeTOML(path string, data []byte) (map[string]interface{}, error) {
	var exports map[string]interface{}
	if err := toml.Unmarshal(data, &exports); err != nil {
		return nil, invalid(err, path, "toml")
	}
	return exports, nil
}
