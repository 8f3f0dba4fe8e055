package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/expose/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/expose/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/expose/internal/version.Date={{.Date}}
)

// String renders the build information for `expose version`.
func String() string {
	return fmt.Sprintf("expose version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
