// Package logging wires zerolog for expose.
//
// The CLI calls SetupLogger once with the -v count (or the level derived from
// EXPOSE_ENV). Library code never reads the environment: components obtain a
// logger through GetLogger or receive one explicitly.
package logging
