// Package output renders CLI results: namespaces serialized as JSON, YAML
// or TOML, file listings and errors. Terminal styling uses lipgloss and is
// dropped when stdout is not a terminal or NO_COLOR is set.
package output
