// Package config handles configuration management for the expose CLI.
// It layers embedded TOML defaults, the global XDG config, a project
// .expose.toml, an explicit file and EXPOSE_* environment variables.
package config
