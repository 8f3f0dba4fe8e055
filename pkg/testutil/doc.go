// Package testutil provides utilities for testing expose components.
//
// Key components:
//   - TestEnvironment: a root directory on an in-memory (afero) or real
//     filesystem, with helpers to write module trees
//   - ModuleTree: the canonical a/b/inc/c/vendor/d fixture
//   - FailingFS: error injection for Stat and ReadDir
//
// Memory environments list directories in name order, which makes walk
// order deterministic. Use EnvIsolated only for code that goes through the
// OS directly (caller inference, working-directory fallback, config files).
package testutil
