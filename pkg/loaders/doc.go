// Package loaders supplies the module loading capability the importer
// depends on.
//
// A module is a data file whose top-level keys are its exports. The Registry
// picks a loader by file extension:
//
//	.yaml .yml   gopkg.in/yaml.v3
//	.toml        github.com/pelletier/go-toml/v2
//	.json        encoding/json
//	.hcl         github.com/hashicorp/hcl/v2 (attributes only)
//	.xml         github.com/beevik/etree (children of the root element)
//
// Callers with other needs implement Loader, or wrap a function with
// LoaderFunc, and pass it to the importer.
package loaders
