package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Semantic colors, adapted to light and dark terminals.
var (
	colorError = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	colorPath  = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	colorMuted = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

// Styles holds the lipgloss styles used by the CLI.
type Styles struct {
	Error lipgloss.Style
	Path  lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles builds styles bound to r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Error: r.NewStyle().Bold(true).Foreground(colorError),
		Path:  r.NewStyle().Foreground(colorPath),
		Muted: r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// NoColor reports whether f should receive plain text: NO_COLOR is set or
// f is not a terminal.
func NoColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
