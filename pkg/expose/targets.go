package expose

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/arthur-debert/expose/pkg/matchers"
	"github.com/arthur-debert/expose/pkg/types"
)

// DependencyDir is the reserved directory holding third-party code. Paths
// with a segment of this name below a target's parent are excluded by
// default.
const DependencyDir = "vendor"

// defaultSubdirs are probed, in order, under each base directory.
var defaultSubdirs = []string{"lib", "src"}

// DefaultTarget returns the first existing directory among <base>/lib and
// <base>/src for each base in order, falling back to the working directory.
// Candidates that are missing or unreadable are skipped.
func DefaultTarget(fsys types.FS, bases ...string) string {
	for _, base := range bases {
		if base == "" {
			continue
		}
		for _, sub := range defaultSubdirs {
			candidate := filepath.Join(base, sub)
			info, err := fsys.Stat(candidate)
			if err == nil && info.IsDir() {
				return candidate
			}
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// DefaultExcludes builds one exclude pattern per target. Each is anchored at
// the target's parent directory and matches any path with a DependencyDir
// segment below it, so unrelated paths elsewhere that happen to contain the
// segment are unaffected.
func DefaultExcludes(targets []string) []matchers.Matcher {
	sep := regexp.QuoteMeta(string(filepath.Separator))
	segment := `(?:.*` + sep + `)?` + regexp.QuoteMeta(DependencyDir) + `(?:` + sep + `|$)`

	if len(targets) == 0 {
		return []matchers.Matcher{regexp.MustCompile(`(?:^|` + sep + `)` + regexp.QuoteMeta(DependencyDir) + `(?:` + sep + `|$)`)}
	}

	out := make([]matchers.Matcher, 0, len(targets))
	for _, target := range targets {
		parent := filepath.Dir(target)
		if !strings.HasSuffix(parent, string(filepath.Separator)) {
			parent += string(filepath.Separator)
		}
		out = append(out, regexp.MustCompile(`^`+regexp.QuoteMeta(parent)+segment))
	}
	return out
}

// callerDirs returns up to two source directories from the call stack,
// nearest first. skip 0 starts at the function calling callerDirs.
func callerDirs(skip int) []string {
	pc := make([]uintptr, 8)
	n := runtime.Callers(skip+2, pc)
	frames := runtime.CallersFrames(pc[:n])

	var dirs []string
	for len(dirs) < 2 {
		frame, more := frames.Next()
		if frame.File != "" {
			dirs = append(dirs, filepath.Dir(frame.File))
		}
		if !more {
			break
		}
	}
	return dirs
}
