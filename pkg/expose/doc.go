// Package expose imports the exports of every module found under a set of
// target paths into one namespace.
//
// Each target is walked depth-first (unless NoRecurse is set). A file
// qualifies when its absolute path matches at least one include matcher and
// no exclude matcher. Qualifying files are loaded through a loaders.Loader
// and their exported name/value pairs are merged into the scope: the first
// module to export a name wins, and a later module only fills slots that are
// missing or nil. Targets are processed in order, so earlier targets take
// priority on collisions.
//
// Without explicit targets the importer looks for a lib, then a src
// directory next to the calling code (then next to the caller's caller) and
// finally uses the working directory. By default files under a vendor
// directory inside the targets are excluded.
//
// Errors are not swallowed: a missing target, an unreadable directory or a
// module that fails to load aborts the call. The scope keeps whatever was
// merged before the failure.
package expose
