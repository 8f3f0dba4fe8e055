package expose

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/arthur-debert/expose/pkg/logging"
	"github.com/arthur-debert/expose/pkg/matchers"
	"github.com/arthur-debert/expose/pkg/types"
)

// Import walks the targets, loads every qualifying file and merges its
// exports into the scope, first writer wins. The scope is returned even on
// error, holding whatever was merged before the failure.
func Import(opts Options) (types.Namespace, error) {
	cfg, err := resolve(opts, callerDirs(1))
	if err != nil {
		return opts.Scope, err
	}

	done := logging.LogOperationStart(cfg.logger, "import")
	defer done()

	err = cfg.walk(cfg.importModule)
	return cfg.scope, err
}

// Walk calls fn with the absolute path of every file Import would load, in
// the same order, without loading anything. An error from fn stops the walk
// and is returned unchanged.
func Walk(opts Options, fn func(path string) error) error {
	cfg, err := resolve(opts, callerDirs(1))
	if err != nil {
		return err
	}
	return cfg.walk(fn)
}

// Targets returns the absolute targets an Import with opts would scan.
func Targets(opts Options) ([]string, error) {
	cfg, err := resolve(opts, callerDirs(1))
	if err != nil {
		return nil, err
	}
	return cfg.targets, nil
}

func (c *config) walk(fn func(path string) error) error {
	c.logger.Debug().
		Strs("targets", c.targets).
		Strs("include", matchers.Strings(c.include)).
		Strs("exclude", matchers.Strings(c.exclude)).
		Bool("recurse", c.recurse).
		Msg("Expose with options")

	for _, target := range c.targets {
		if err := c.load(target, fn); err != nil {
			return err
		}
	}
	return nil
}

// load handles one explicit target, which may be a file or a directory.
func (c *config) load(target string, fn func(path string) error) error {
	c.logger.Trace().Str("target", target).Msg("Load enter")

	info, err := c.fs.Stat(target)
	if err != nil {
		return statError(err, target)
	}
	if !info.IsDir() {
		return c.visit(target, fn)
	}
	return c.loadDir(target, fn)
}

func (c *config) loadDir(dir string, fn func(path string) error) error {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		// Stat rather than entry.IsDir so symlinked directories are followed.
		info, err := c.fs.Stat(full)
		if err != nil {
			return statError(err, full)
		}

		if info.IsDir() {
			if !c.recurse {
				c.logger.Trace().Str("path", full).Msg("Skipping directory, recursion disabled")
				continue
			}
			c.logger.Trace().Str("path", full).Msg("Load enter")
			if err := c.loadDir(full, fn); err != nil {
				return err
			}
			continue
		}

		if err := c.visit(full, fn); err != nil {
			return err
		}
	}
	return nil
}

// visit applies the include/exclude test to a file.
func (c *config) visit(path string, fn func(path string) error) error {
	if !matchers.Test(path, c.include, c.exclude) {
		c.logger.Trace().Str("path", path).Msg("Path does not qualify")
		return nil
	}
	return fn(path)
}

func (c *config) importModule(path string) error {
	c.logger.Debug().Str("path", path).Msg("Importing module")

	exports, err := c.loader.Load(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrModuleLoad, "cannot import %s", path).
			WithDetail("path", path)
	}

	module := moduleName(path)
	merged := 0
	mixin(c.scope, exports, false, func(key string, value interface{}) {
		merged++
		if c.onImport != nil {
			c.onImport(module, key, value)
		}
	})

	c.logger.Debug().
		Str("module", module).
		Int("exports", len(exports)).
		Int("merged", merged).
		Msg("Module imported")
	return nil
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func statError(err error, path string) error {
	code := errors.ErrFileAccess
	if stderrors.Is(err, fs.ErrNotExist) {
		code = errors.ErrFileNotFound
	}
	return errors.Wrapf(err, code, "cannot stat %s", path).WithDetail("path", path)
}
