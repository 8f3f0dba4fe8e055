package loaders

import (
	"strings"

	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/beevik/etree"
)

// DecodeXML exports each child element of the document root. Leaf elements
// export their trimmed text; elements with children export a nested map.
// Repeated sibling tags collect into a slice.
func DecodeXML(path string, data []byte) (map[string]interface{}, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, invalid(err, path, "xml")
	}

	root := doc.Root()
	if root == nil {
		return nil, invalid(errors.New(errors.ErrModuleInvalid, "document has no root element"), path, "xml")
	}
	return xmlChildren(root), nil
}

func xmlChildren(el *etree.Element) map[string]interface{} {
	out := make(map[string]interface{})
	for _, child := range el.ChildElements() {
		v := xmlValue(child)
		existing, ok := out[child.Tag]
		if !ok {
			out[child.Tag] = v
			continue
		}
		if list, isList := existing.([]interface{}); isList {
			out[child.Tag] = append(list, v)
		} else {
			out[child.Tag] = []interface{}{existing, v}
		}
	}
	return out
}

func xmlValue(el *etree.Element) interface{} {
	if len(el.ChildElements()) == 0 {
		return strings.TrimSpace(el.Text())
	}
	return xmlChildren(el)
}
