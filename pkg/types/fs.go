package types

import "io/fs"

// FS is the read-only filesystem surface the importer needs.
// Implementations live in pkg/filesystem.
type FS interface {
	// Stat follows symlinks, like os.Stat.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of a directory in the order the
	// implementation produces them.
	ReadDir(name string) ([]fs.DirEntry, error)

	ReadFile(name string) ([]byte, error)
}
