package loaders

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/arthur-debert/expose/pkg/filesystem"
	"github.com/arthur-debert/expose/pkg/types"
)

// Registry dispatches module loading by file extension. It satisfies
// Loader, so it can be handed to the importer directly.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Loader
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		items: make(map[string]Loader),
	}
}

// NewDefault returns a registry with every built-in format registered,
// reading files from fs.
func NewDefault(fs types.FS) *Registry {
	r := New()
	for ext, decode := range map[string]DecodeFunc{
		".yaml": DecodeYAML,
		".yml":  DecodeYAML,
		".toml": DecodeTOML,
		".json": DecodeJSON,
		".hcl":  DecodeHCL,
		".xml":  DecodeXML,
	} {
		_ = r.Register(ext, NewFileLoader(fs, decode))
	}
	return r
}

// Default returns NewDefault on the OS filesystem.
func Default() *Registry {
	return NewDefault(filesystem.NewOS())
}

func normalizeExt(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// Register adds a loader for an extension ("yaml" and ".yaml" are equivalent)
func (r *Registry) Register(ext string, loader Loader) error {
	ext = normalizeExt(ext)
	if ext == "" {
		return errors.New(errors.ErrInvalidInput, "loader extension cannot be empty")
	}
	if loader == nil {
		return errors.Newf(errors.ErrInvalidInput, "loader for '%s' cannot be nil", ext)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[ext]; exists {
		return errors.Newf(errors.ErrInvalidInput, "loader for '%s' is already registered", ext)
	}

	r.items[ext] = loader
	return nil
}

// Remove removes the loader for an extension
func (r *Registry) Remove(ext string) error {
	ext = normalizeExt(ext)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[ext]; !exists {
		return errors.Newf(errors.ErrLoaderNotFound, "no loader registered for '%s'", ext)
	}

	delete(r.items, ext)
	return nil
}

// Get retrieves the loader for an extension
func (r *Registry) Get(ext string) (Loader, error) {
	ext = normalizeExt(ext)

	r.mu.RLock()
	defer r.mu.RUnlock()

	loader, exists := r.items[ext]
	if !exists {
		return nil, errors.Newf(errors.ErrLoaderNotFound, "no loader registered for '%s'", ext)
	}
	return loader, nil
}

// Has checks if an extension has a loader
func (r *Registry) Has(ext string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[normalizeExt(ext)]
	return exists
}

// Extensions returns all registered extensions, with leading dot, sorted
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.items))
	for ext := range r.items {
		exts = append(exts, ext)
	}

	sort.Strings(exts)
	return exts
}

// Pattern returns a regular expression matching paths that end in one of
// the registered extensions. It is the importer's default include pattern.
func (r *Registry) Pattern() *regexp.Regexp {
	return ExtensionPattern(r.Extensions())
}

// Load dispatches to the loader registered for the path's extension.
func (r *Registry) Load(path string) (map[string]interface{}, error) {
	loader, err := r.Get(filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLoaderNotFound, "cannot load %s", path).
			WithDetail("path", path)
	}
	return loader.Load(path)
}

// ExtensionPattern builds `\.(a|b)$` from a list of extensions. An empty
// list yields a pattern that matches nothing.
func ExtensionPattern(exts []string) *regexp.Regexp {
	if len(exts) == 0 {
		return regexp.MustCompile(`[^\s\S]`)
	}
	quoted := make([]string, 0, len(exts))
	for _, ext := range exts {
		quoted = append(quoted, regexp.QuoteMeta(strings.TrimPrefix(ext, ".")))
	}
	return regexp.MustCompile(`\.(?:` + strings.Join(quoted, "|") + `)$`)
}
