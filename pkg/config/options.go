package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/arthur-debert/expose/pkg/expose"
	"github.com/arthur-debert/expose/pkg/logging"
	"github.com/arthur-debert/expose/pkg/matchers"
	"github.com/arthur-debert/expose/pkg/types"
)

// Options turns the configuration into importer options for targets.
// Without targets the default target is probed under the working
// directory. Include stays nil (loader extensions) unless include or globs
// are configured. Configured excludes replace the default vendor exclusion;
// with none configured the default applies unless NoDefaultExcludes is set.
func (c *Config) Options(fsys types.FS, targets []string) (expose.Options, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return expose.Options{}, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
	}

	if len(targets) == 0 {
		targets = []string{expose.DefaultTarget(fsys, cwd)}
	}
	abs := make([]string, 0, len(targets))
	for _, t := range targets {
		if !filepath.IsAbs(t) {
			t = filepath.Join(cwd, t)
		}
		abs = append(abs, filepath.Clean(t))
	}

	logger := logging.GetLogger("expose")
	opts := expose.Options{
		Targets:   abs,
		NoRecurse: !c.Recurse,
		FS:        fsys,
		BaseDir:   cwd,
		Logger:    &logger,
	}

	if len(c.Include) > 0 || len(c.Globs) > 0 {
		include, err := matchers.Regexps(c.Include...)
		if err != nil {
			return expose.Options{}, err
		}
		globs, err := matchers.Globs(c.Globs...)
		if err != nil {
			return expose.Options{}, err
		}
		opts.Include = matchers.MergeMatchers(include, globs)
	}

	exclude, err := matchers.Regexps(c.Exclude...)
	if err != nil {
		return expose.Options{}, err
	}
	switch {
	case len(exclude) > 0:
		opts.Exclude = exclude
	case c.NoDefaultExcludes:
		opts.Exclude = []matchers.Matcher{}
	default:
		opts.Exclude = expose.DefaultExcludes(abs)
	}

	return opts, nil
}
