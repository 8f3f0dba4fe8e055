// Package matchers provides the include/exclude pattern sets used to decide
// which paths expose loads.
//
// Patterns are tested against the full absolute path, never the base name,
// unless a Glob is given a separator-free pattern. A path qualifies when at
// least one include matcher matches and no exclude matcher does.
package matchers
