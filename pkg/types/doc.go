// Package types holds the small shared types of expose: the Namespace that
// receives exported values and the read-only FS the importer walks.
package types
