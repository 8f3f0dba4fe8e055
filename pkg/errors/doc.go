// Package errors provides coded errors for expose.
//
// Every failure the importer reports carries an ErrorCode so callers and tests
// can branch on the category (filesystem, module load, pattern, config)
// without matching on message text. The original cause stays reachable via
// errors.Unwrap.
package errors
