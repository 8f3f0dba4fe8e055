package matchers

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether an absolute path matches a pattern.
// *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
}

// Test reports whether target matches at least one include matcher and
// none of the exclude matchers.
func Test(target string, include, exclude []Matcher) bool {
	return Any(target, include) && !Any(target, exclude)
}

// Any reports whether any matcher in the set matches target.
func Any(target string, set []Matcher) bool {
	for _, m := range set {
		if m != nil && m.MatchString(target) {
			return true
		}
	}
	return false
}

// Regexps compiles each pattern into a matcher. A single pattern yields a
// one-element set.
func Regexps(patterns ...string) ([]Matcher, error) {
	out := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
				"invalid regular expression %q", p).WithDetail("pattern", p)
		}
		out = append(out, re)
	}
	return out, nil
}

// MustRegexps is like Regexps but panics on an invalid pattern.
func MustRegexps(patterns ...string) []Matcher {
	out, err := Regexps(patterns...)
	if err != nil {
		panic(err)
	}
	return out
}

// Glob matches paths with doublestar syntax.
//
// Absolute patterns are matched against the whole path. Patterns containing
// a separator match any trailing run of path segments, so "**/conf/*.yaml"
// matches "/srv/app/conf/db.yaml". Patterns without a separator match the
// base name only.
type Glob struct {
	Pattern string
}

// MatchString implements Matcher.
func (g Glob) MatchString(path string) bool {
	pattern := filepath.ToSlash(g.Pattern)
	path = filepath.ToSlash(path)

	switch {
	case strings.HasPrefix(pattern, "/"):
		ok, _ := doublestar.Match(pattern, path)
		return ok
	case strings.Contains(pattern, "/"):
		rel := strings.TrimPrefix(path, "/")
		for {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return true
			}
			i := strings.Index(rel, "/")
			if i < 0 {
				return false
			}
			rel = rel[i+1:]
		}
	default:
		ok, _ := doublestar.Match(pattern, filepath.Base(path))
		return ok
	}
}

// String returns the pattern.
func (g Glob) String() string {
	return g.Pattern
}

// Globs validates each pattern and returns glob matchers.
func Globs(patterns ...string) ([]Matcher, error) {
	out := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, errors.Newf(errors.ErrPatternInvalid,
				"invalid glob pattern %q", p).WithDetail("pattern", p)
		}
		out = append(out, Glob{Pattern: p})
	}
	return out, nil
}

// MergeMatchers concatenates matcher sets preserving input order.
func MergeMatchers(sets ...[]Matcher) []Matcher {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]Matcher, 0, total)
	for _, set := range sets {
		out = append(out, set...)
	}
	return out
}

// Strings renders matchers for logging.
func Strings(set []Matcher) []string {
	out := make([]string, 0, len(set))
	for _, m := range set {
		if s, ok := m.(interface{ String() string }); ok {
			out = append(out, s.String())
			continue
		}
		out = append(out, "<matcher>")
	}
	return out
}
