package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/arthur-debert/expose/pkg/logging"
	"github.com/arthur-debert/expose/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a namespace serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrOutputFormat, "unknown output format %q", name).
		WithDetail("format", name)
}

// Marshal serializes ns in format. Keys come out sorted in every format.
func Marshal(ns types.Namespace, format Format) ([]byte, error) {
	if ns == nil {
		ns = types.Namespace{}
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(map[string]interface{}(ns), "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(map[string]interface{}(ns)); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case FormatTOML:
		data, err = toml.Marshal(map[string]interface{}(ns))
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unknown output format %q", format).
			WithDetail("format", string(format))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputFormat, "cannot encode namespace as %s", format).
			WithDetail("format", string(format))
	}
	return data, nil
}

// Renderer writes command results to a writer.
type Renderer struct {
	writer io.Writer
	styles Styles
}

// NewRenderer creates a Renderer for w. With noColor every style renders as
// plain text.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	log := logging.GetLogger("output.Renderer")

	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	log.Debug().
		Bool("noColor", noColor).
		Msg("Creating renderer with color settings")

	return &Renderer{writer: w, styles: NewStyles(r)}
}

// Namespace writes ns in format.
func (r *Renderer) Namespace(ns types.Namespace, format Format) error {
	data, err := Marshal(ns, format)
	if err != nil {
		return err
	}
	_, err = r.writer.Write(data)
	return err
}

// Files writes one path per line. An empty list prints a muted note.
func (r *Renderer) Files(paths []string) error {
	if len(paths) == 0 {
		_, err := fmt.Fprintln(r.writer, r.styles.Muted.Render("no matching files"))
		return err
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(r.writer, r.styles.Path.Render(p)); err != nil {
			return err
		}
	}
	return nil
}

// Error writes err with the error style, including any coded details.
func (r *Renderer) Error(err error) error {
	msg := err.Error()
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, details[k]))
		}
		msg += " " + r.styles.Muted.Render("("+strings.Join(parts, " ")+")")
	}
	_, writeErr := fmt.Fprintf(r.writer, "%s %s\n", r.styles.Error.Render("Error:"), msg)
	return writeErr
}
