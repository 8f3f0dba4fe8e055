// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Orchestrate test environments with module trees on disk or in memory

package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/expose/pkg/filesystem"
	"github.com/arthur-debert/expose/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// FileTree maps slash-separated paths relative to the environment root to
// file contents. Entries ending in "/" create empty directories.
type FileTree map[string]string

// TestEnvironment provides a root directory and a filesystem to build
// module trees in.
type TestEnvironment struct {
	Root string
	FS   types.FS
	Type EnvType

	t   *testing.T
	mem afero.Fs
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual/app"
		env.mem = afero.NewMemMapFs()
		env.FS = filesystem.NewAferoFS(env.mem)
		if err := env.mem.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("failed to create root: %v", err)
		}
	case EnvIsolated:
		// Resolve symlinks so paths match what the importer computes
		// (macOS temp dirs live behind /var -> /private/var).
		root, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatalf("failed to resolve temp dir: %v", err)
		}
		env.Root = root
		env.FS = filesystem.NewOS()
	}

	return env
}

// Path joins a slash-separated relative path onto the root.
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, filepath.FromSlash(rel))
}

// WriteFile writes content at a path relative to the root, creating parents.
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()

	full := env.Path(rel)
	if err := env.mkdirAll(filepath.Dir(full)); err != nil {
		env.t.Fatalf("failed to create directory for %s: %v", full, err)
	}

	var err error
	if env.mem != nil {
		err = afero.WriteFile(env.mem, full, []byte(content), 0644)
	} else {
		err = os.WriteFile(full, []byte(content), 0644)
	}
	if err != nil {
		env.t.Fatalf("failed to write file %s: %v", full, err)
	}
	return full
}

// Mkdir creates a directory relative to the root.
func (env *TestEnvironment) Mkdir(rel string) string {
	env.t.Helper()

	full := env.Path(rel)
	if err := env.mkdirAll(full); err != nil {
		env.t.Fatalf("failed to create directory %s: %v", full, err)
	}
	return full
}

// WriteTree writes every entry of tree.
func (env *TestEnvironment) WriteTree(tree FileTree) {
	env.t.Helper()

	for rel, content := range tree {
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			env.Mkdir(rel)
			continue
		}
		env.WriteFile(rel, content)
	}
}

func (env *TestEnvironment) mkdirAll(dir string) error {
	if env.mem != nil {
		return env.mem.MkdirAll(dir, 0755)
	}
	return os.MkdirAll(dir, fs.ModeDir|0755)
}
