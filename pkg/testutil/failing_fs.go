package testutil

import (
	"io/fs"

	"github.com/arthur-debert/expose/pkg/types"
)

// FailingFS wraps a types.FS and returns injected errors for chosen paths.
type FailingFS struct {
	types.FS
	StatErrors    map[string]error
	ReadDirErrors map[string]error
}

func (f *FailingFS) Stat(name string) (fs.FileInfo, error) {
	if err, ok := f.StatErrors[name]; ok {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FailingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := f.ReadDirErrors[name]; ok {
		return nil, err
	}
	return f.FS.ReadDir(name)
}
