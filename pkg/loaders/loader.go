package loaders

import (
	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/arthur-debert/expose/pkg/types"
)

// Loader loads the module at an absolute path and returns its exported
// name/value pairs.
type Loader interface {
	Load(path string) (map[string]interface{}, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (map[string]interface{}, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (map[string]interface{}, error) {
	return f(path)
}

// DecodeFunc turns the raw contents of a module file into its exports.
type DecodeFunc func(path string, data []byte) (map[string]interface{}, error)

// fileLoader reads a file through a types.FS and decodes it.
type fileLoader struct {
	fs     types.FS
	decode DecodeFunc
}

// NewFileLoader returns a Loader that reads files from fs and decodes them
// with decode.
func NewFileLoader(fs types.FS, decode DecodeFunc) Loader {
	return &fileLoader{fs: fs, decode: decode}
}

func (l *fileLoader) Load(path string) (map[string]interface{}, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read module %s", path).
			WithDetail("path", path)
	}
	exports, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}
	if exports == nil {
		exports = map[string]interface{}{}
	}
	return exports, nil
}

// invalid wraps a decoder failure.
func invalid(err error, path, format string) error {
	return errors.Wrapf(err, errors.ErrModuleInvalid, "cannot decode %s module %s", format, path).
		WithDetail("path", path).
		WithDetail("format", format)
}
