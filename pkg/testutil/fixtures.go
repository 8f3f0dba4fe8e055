package testutil

// ModuleTree is the canonical fixture: two top-level modules, one nested
// module and one module inside the reserved vendor directory.
//
//	lib/a.yaml          a: 1
//	lib/b.toml          b = 2
//	lib/inc/c.json      {"c": 3}
//	lib/vendor/d.yaml   d: 4
//	lib/README.md       (never qualifies)
func ModuleTree() FileTree {
	return FileTree{
		"lib/a.yaml":        "a: 1\n",
		"lib/b.toml":        "b = 2\n",
		"lib/inc/c.json":    `{"c": 3}`,
		"lib/vendor/d.yaml": "d: 4\n",
		"lib/README.md":     "# modules\n",
	}
}
