package types

import "sort"

// Namespace is the destination that receives exported names and values.
// It is owned by the caller; the importer only adds keys to it.
type Namespace map[string]interface{}

// Keys returns the namespace keys in sorted order.
func (n Namespace) Keys() []string {
	keys := make([]string, 0, len(n))
	for k := range n {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key holds a usable (non-nil) value.
func (n Namespace) Has(key string) bool {
	v, ok := n[key]
	return ok && v != nil
}
