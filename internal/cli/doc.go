// Package cli builds the expose command tree: the root command imports the
// targets and prints the namespace, `files` lists what would be loaded.
package cli
