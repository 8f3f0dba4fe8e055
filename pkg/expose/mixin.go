package expose

import (
	"sort"

	"github.com/arthur-debert/expose/pkg/types"
)

// Mixin copies every key of src into dst whose slot in dst is missing or
// nil. Present values are never overwritten and keys are never deleted.
// With skipEmpty, nil values in src are not copied. dst is allocated when
// nil and returned.
//
//	Mixin(types.Namespace{"a": "A"}, types.Namespace{"b": "B"}, false)
//	// => {a: A, b: B}
//
//	Mixin(types.Namespace{"a": nil}, types.Namespace{"a": "A", "b": nil}, true)
//	// => {a: A}
func Mixin(dst, src types.Namespace, skipEmpty bool) types.Namespace {
	if dst == nil {
		dst = types.Namespace{}
	}
	mixin(dst, src, skipEmpty, nil)
	return dst
}

// mixin walks src keys in sorted order and reports each write to fn.
func mixin(dst, src map[string]interface{}, skipEmpty bool, fn func(key string, value interface{})) {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := src[k]
		if dst[k] != nil {
			continue
		}
		if skipEmpty && v == nil {
			continue
		}
		dst[k] = v
		if fn != nil {
			fn(k, v)
		}
	}
}
