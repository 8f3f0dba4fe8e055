// Test Type: Unit Test
// Description: Tests for the importer - walking, filtering and merging modules

package expose_test

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/arthur-debert/expose/pkg/expose"
	"github.com/arthur-debert/expose/pkg/loaders"
	"github.com/arthur-debert/expose/pkg/logging"
	"github.com/arthur-debert/expose/pkg/matchers"
	"github.com/arthur-debert/expose/pkg/testutil"
	"github.com/arthur-debert/expose/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteTree(testutil.ModuleTree())
	return env
}

func opts(env *testutil.TestEnvironment) expose.Options {
	return expose.Options{FS: env.FS, BaseDir: env.Root}
}

// subdirPattern excludes a directory named dir anywhere under the root.
func subdirPattern(env *testutil.TestEnvironment, dir string) matchers.Matcher {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(env.Root) + `/(?:.*/)?` + dir + `(?:/|$)`)
}

func TestImport(t *testing.T) {
	t.Run("imports_all_of_lib_by_default", func(t *testing.T) {
		env := setup(t)

		got, err := expose.Import(opts(env))
		require.NoError(t, err)

		assert.Equal(t, types.Namespace{"a": 1, "b": int64(2), "c": float64(3)}, got)
	})

	t.Run("honors_no_recurse", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.NoRecurse = true
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, got.Keys())
	})

	t.Run("honors_single_file_include", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Include = matchers.MustRegexps(`a\.yaml$`)
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, types.Namespace{"a": 1}, got)
	})

	t.Run("honors_directory_include", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Include = matchers.MustRegexps(`/inc/`)
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"c"}, got.Keys())
	})

	t.Run("honors_directory_exclude", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Exclude = []matchers.Matcher{subdirPattern(env, "inc"), subdirPattern(env, "vendor")}
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, got.Keys())
	})

	t.Run("honors_single_file_exclude", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Exclude = []matchers.Matcher{
			regexp.MustCompile(`b\.toml$`),
			subdirPattern(env, "vendor"),
			subdirPattern(env, "inc"),
		}
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"a"}, got.Keys())
	})

	t.Run("explicit_exclude_replaces_default", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Exclude = matchers.MustRegexps(`c\.json$`)
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "d"}, got.Keys())
	})

	t.Run("uses_specified_scope", func(t *testing.T) {
		env := setup(t)

		scope := types.Namespace{"existing": true}
		o := opts(env)
		o.Scope = scope
		o.Include = matchers.MustRegexps(`a\.yaml$`)
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, types.Namespace{"existing": true, "a": 1}, scope)
		got["probe"] = 1
		assert.Contains(t, scope, "probe", "returned namespace must be the supplied scope")
	})

	t.Run("uses_multiple_targets", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Targets = []string{env.Path("lib/inc"), env.Path("lib/vendor")}
		o.Exclude = []matchers.Matcher{}
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"c", "d"}, got.Keys())
	})

	t.Run("single_target", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Targets = []string{env.Path("lib/inc")}
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"c"}, got.Keys())
	})

	t.Run("file_target", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Targets = []string{env.Path("lib/b.toml")}
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, types.Namespace{"b": int64(2)}, got)
	})

	t.Run("file_target_must_still_qualify", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Targets = []string{env.Path("lib/README.md")}
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Empty(t, got)
	})

	t.Run("default_exclude_covers_vendor_even_when_included", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Include = matchers.MustRegexps(`\.yaml$`)
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"a"}, got.Keys())
	})
}

func TestImport_FirstWriterWins(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteTree(testutil.FileTree{
		"lib/1.yaml":        "x: first\nempty: null\n",
		"lib/2.yaml":        "x: second\nempty: filled\ny: 2\n",
		"other/3.yaml":      "x: third\nz: 3\n",
		"other/4.yaml":      "y: 4\n",
		"lib/nested/0.yaml": "x: nested\n",
	})

	t.Run("earlier_module_keeps_name", func(t *testing.T) {
		got, err := expose.Import(opts(env))
		require.NoError(t, err)

		assert.Equal(t, "first", got["x"])
		assert.Equal(t, "filled", got["empty"], "nil slot is replaceable")
		assert.Equal(t, 2, got["y"])
	})

	t.Run("earlier_target_takes_priority", func(t *testing.T) {
		o := opts(env)
		o.Targets = []string{env.Path("other"), env.Path("lib")}
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, "third", got["x"])
		assert.Equal(t, 4, got["y"])
		assert.Equal(t, 3, got["z"])
	})

	t.Run("present_scope_values_are_kept", func(t *testing.T) {
		o := opts(env)
		o.Scope = types.Namespace{"x": "caller", "y": nil}
		got, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, "caller", got["x"])
		assert.Equal(t, 2, got["y"])
	})
}

func TestImport_Idempotent(t *testing.T) {
	env := setup(t)

	first, err := expose.Import(opts(env))
	require.NoError(t, err)
	second, err := expose.Import(opts(env))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestImport_OnImport(t *testing.T) {
	env := setup(t)

	type call struct {
		module, name string
		value        interface{}
	}
	var calls []call

	o := opts(env)
	o.Scope = types.Namespace{"b": "taken"}
	o.OnImport = func(module, name string, value interface{}) {
		calls = append(calls, call{module, name, value})
	}
	_, err := expose.Import(o)
	require.NoError(t, err)

	assert.Equal(t, []call{
		{"a", "a", 1},
		{"c", "c", float64(3)},
	}, calls)
}

func TestImport_Errors(t *testing.T) {
	t.Run("missing_target", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Targets = []string{env.Path("lib"), env.Path("missing")}
		got, err := expose.Import(o)
		require.Error(t, err)

		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
		assert.True(t, stderrors.Is(err, fs.ErrNotExist))
		assert.Equal(t, []string{"a", "b", "c"}, got.Keys(), "earlier targets stay merged")
	})

	t.Run("load_error_aborts_walk", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteTree(testutil.FileTree{
			"lib/a.yaml": "a: 1\n",
			"lib/b.yaml": "- not\n- a mapping\n",
			"lib/c.yaml": "c: 3\n",
		})

		got, err := expose.Import(opts(env))
		require.Error(t, err)

		assert.True(t, errors.IsErrorCode(err, errors.ErrModuleLoad))
		assert.True(t, stderrors.Is(err, errors.New(errors.ErrModuleInvalid, "")))
		assert.Equal(t, env.Path("lib/b.yaml"), errors.GetErrorDetails(err)["path"])
		assert.Equal(t, types.Namespace{"a": 1}, got)
	})

	t.Run("included_file_without_loader", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Include = matchers.MustRegexps(`\.md$`)
		_, err := expose.Import(o)
		require.Error(t, err)

		assert.True(t, errors.IsErrorCode(err, errors.ErrModuleLoad))
		assert.True(t, stderrors.Is(err, errors.New(errors.ErrLoaderNotFound, "")))
	})

	t.Run("stat_failure", func(t *testing.T) {
		env := setup(t)
		denied := &fs.PathError{Op: "stat", Path: env.Path("lib/inc"), Err: fs.ErrPermission}

		o := opts(env)
		o.FS = &testutil.FailingFS{FS: env.FS, StatErrors: map[string]error{env.Path("lib/inc"): denied}}
		_, err := expose.Import(o)
		require.Error(t, err)

		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
		assert.True(t, stderrors.Is(err, fs.ErrPermission))
	})

	t.Run("read_dir_failure", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.FS = &testutil.FailingFS{FS: env.FS, ReadDirErrors: map[string]error{env.Path("lib"): fs.ErrPermission}}
		_, err := expose.Import(o)
		require.Error(t, err)

		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	t.Run("custom_loader_without_extensions_needs_include", func(t *testing.T) {
		env := setup(t)

		o := opts(env)
		o.Loader = loaders.LoaderFunc(func(path string) (map[string]interface{}, error) {
			return map[string]interface{}{"path": path}, nil
		})
		_, err := expose.Import(o)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

		o.Include = matchers.MustRegexps(`\.md$`)
		got, err := expose.Import(o)
		require.NoError(t, err)
		assert.Equal(t, types.Namespace{"path": env.Path("lib/README.md")}, got)
	})
}

func TestWalk(t *testing.T) {
	env := setup(t)

	var walked []string
	err := expose.Walk(opts(env), func(path string) error {
		walked = append(walked, path)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		env.Path("lib/a.yaml"),
		env.Path("lib/b.toml"),
		env.Path("lib/inc/c.json"),
	}, walked)

	t.Run("matches_import_order", func(t *testing.T) {
		var modules []string
		o := opts(env)
		o.OnImport = func(module, _ string, _ interface{}) { modules = append(modules, module) }
		_, err := expose.Import(o)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c"}, modules)
	})

	t.Run("callback_error_stops_walk", func(t *testing.T) {
		stop := stderrors.New("stop")
		count := 0
		err := expose.Walk(opts(env), func(string) error {
			count++
			return stop
		})
		assert.Same(t, stop, err)
		assert.Equal(t, 1, count)
	})
}

func TestTargets(t *testing.T) {
	t.Run("prefers_lib", func(t *testing.T) {
		env := setup(t)
		env.Mkdir("src")

		got, err := expose.Targets(opts(env))
		require.NoError(t, err)
		assert.Equal(t, []string{env.Path("lib")}, got)
	})

	t.Run("falls_back_to_src", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile("src/a.yaml", "a: 1\n")

		got, err := expose.Targets(opts(env))
		require.NoError(t, err)
		assert.Equal(t, []string{env.Path("src")}, got)

		ns, err := expose.Import(opts(env))
		require.NoError(t, err)
		assert.Equal(t, types.Namespace{"a": 1}, ns)
	})

	t.Run("explicit_targets_are_absolute", func(t *testing.T) {
		got, err := expose.Targets(expose.Options{Targets: []string{"relative/dir"}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, filepath.IsAbs(got[0]), got[0])
	})
}

// traceGlobally lifts the zerolog global level for one test.
func traceGlobally(t *testing.T) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func TestImport_Logging(t *testing.T) {
	traceGlobally(t)
	env := setup(t)

	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, zerolog.DebugLevel, "expose")

	o := opts(env)
	o.Logger = &logger
	_, err := expose.Import(o)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Expose with options")
	assert.Contains(t, out, "Importing module")
	assert.Contains(t, out, env.Path("lib/a.yaml"))
	assert.NotContains(t, out, "Load enter", "trace lines stay hidden at debug level")

	t.Run("disabled_logger_is_silent", func(t *testing.T) {
		var quiet bytes.Buffer
		logger := logging.NewLogger(&quiet, logging.LevelForEnv("development"), "expose")

		o := opts(env)
		o.Logger = &logger
		_, err := expose.Import(o)
		require.NoError(t, err)
		assert.Empty(t, quiet.String())
	})
}

func TestImport_SilentWithoutLogger(t *testing.T) {
	traceGlobally(t)
	env := setup(t)

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	ns, err := expose.Import(opts(env))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ns.Keys())
	assert.Empty(t, buf.String())

	err = expose.Walk(opts(env), func(string) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
