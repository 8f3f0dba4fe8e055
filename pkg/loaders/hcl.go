package loaders

import (
	"encoding/json"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// DecodeHCL decodes the top-level attributes of an HCL file. Expressions are
// evaluated without variables or functions; blocks are not allowed.
func DecodeHCL(path string, data []byte) (map[string]interface{}, error) {
	file, diags := hclsyntax.ParseConfig(data, path, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, invalid(diags, path, "hcl")
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, invalid(diags, path, "hcl")
	}

	exports := make(map[string]interface{}, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, invalid(diags, path, "hcl")
		}

		// cty values go through their JSON form to become plain Go values.
		raw, err := ctyjson.Marshal(val, val.Type())
		if err != nil {
			return nil, invalid(err, path, "hcl")
		}
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, invalid(err, path, "hcl")
		}
		exports[name] = v
	}
	return exports, nil
}
