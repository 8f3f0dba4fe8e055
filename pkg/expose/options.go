package expose

import (
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/arthur-debert/expose/pkg/filesystem"
	"github.com/arthur-debert/expose/pkg/loaders"
	"github.com/arthur-debert/expose/pkg/matchers"
	"github.com/arthur-debert/expose/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a single Import or Walk call. Every field is optional.
type Options struct {
	// Targets are the files or directories to scan, processed in order.
	// Empty means the default target (see DefaultTarget).
	Targets []string

	// Include matchers; a path must match at least one. nil means a pattern
	// built from the extensions the Loader understands.
	Include []matchers.Matcher

	// Exclude matchers; a path matching any of them is skipped. nil means
	// DefaultExcludes for the resolved targets. A non-nil empty slice
	// excludes nothing.
	Exclude []matchers.Matcher

	// Scope receives the exports. nil means a new empty namespace.
	Scope types.Namespace

	// NoRecurse limits each target to its top-level listing.
	NoRecurse bool

	// Loader loads qualifying files. nil means loaders.NewDefault(FS).
	Loader loaders.Loader

	// FS is the filesystem to read. nil means the OS filesystem.
	FS types.FS

	// BaseDir is the directory of the invoking code, used to find the
	// default target. Empty means it is inferred from the call stack.
	BaseDir string

	// OnImport, when set, is called for every property merged into Scope
	// with the module's base name (no directory, no extension).
	OnImport func(module, name string, value interface{})

	// Logger receives diagnostics. nil means no diagnostics at all; pass
	// logging.GetLogger("expose") to follow the process-wide level.
	Logger *zerolog.Logger
}

// config is Options with every default applied.
type config struct {
	targets  []string
	include  []matchers.Matcher
	exclude  []matchers.Matcher
	scope    types.Namespace
	recurse  bool
	loader   loaders.Loader
	fs       types.FS
	onImport func(module, name string, value interface{})
	logger   zerolog.Logger
}

// resolve fills in defaults. callers are the inferred directories of the
// invoking code, nearest first; they are ignored when BaseDir is set.
func resolve(opts Options, callers []string) (*config, error) {
	cfg := &config{
		include:  opts.Include,
		exclude:  opts.Exclude,
		scope:    opts.Scope,
		recurse:  !opts.NoRecurse,
		loader:   opts.Loader,
		fs:       opts.FS,
		onImport: opts.OnImport,
	}

	if opts.Logger != nil {
		cfg.logger = *opts.Logger
	} else {
		cfg.logger = zerolog.Nop()
	}

	if cfg.fs == nil {
		cfg.fs = filesystem.NewOS()
	}
	if cfg.loader == nil {
		cfg.loader = loaders.NewDefault(cfg.fs)
	}
	if cfg.scope == nil {
		cfg.scope = types.Namespace{}
	}

	if cfg.include == nil {
		include, err := defaultInclude(cfg.loader)
		if err != nil {
			return nil, err
		}
		cfg.include = include
	}

	targets := opts.Targets
	if len(targets) == 0 {
		bases := callers
		if opts.BaseDir != "" {
			bases = []string{opts.BaseDir}
		}
		targets = []string{DefaultTarget(cfg.fs, bases...)}
	}
	for _, t := range targets {
		abs, err := filepath.Abs(t)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve target %s", t)
		}
		cfg.targets = append(cfg.targets, abs)
	}

	if cfg.exclude == nil {
		cfg.exclude = DefaultExcludes(cfg.targets)
	}

	return cfg, nil
}

// defaultInclude derives the include set from what the loader can load.
func defaultInclude(loader loaders.Loader) ([]matchers.Matcher, error) {
	switch l := loader.(type) {
	case interface{ Pattern() *regexp.Regexp }:
		return []matchers.Matcher{l.Pattern()}, nil
	case interface{ Extensions() []string }:
		return []matchers.Matcher{loaders.ExtensionPattern(l.Extensions())}, nil
	default:
		return nil, errors.New(errors.ErrInvalidInput,
			"no include patterns given and the loader does not report its extensions")
	}
}
