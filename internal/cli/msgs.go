package cli

// Command descriptions
const (
	MsgRootShort = "Load every module under a directory tree into one namespace"
	MsgRootLong  = `expose walks the target files and directories, loads every file whose path
matches the include patterns and none of the exclude patterns, and merges the
top-level keys of each into a single namespace. The first file to define a
key wins.

Without targets, ./lib or ./src is used when present, otherwise the current
directory. Paths under a vendor directory are skipped unless --exclude or
--no-exclude is given.

Supported formats: YAML, TOML, JSON, HCL and XML.`
	MsgFilesShort      = "List the files that would be loaded, without loading them"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagInclude   = "Regular expression a path must match (repeatable)"
	MsgFlagGlob      = "Glob a path must match, doublestar syntax (repeatable)"
	MsgFlagExclude   = "Regular expression excluding paths, replaces the vendor default (repeatable)"
	MsgFlagNoExclude = "Drop the default and configured exclusions"
	MsgFlagNoRecurse = "Only scan the top level of each target directory"
	MsgFlagOutput    = "Output format: json, yaml or toml"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/expose/config.toml)"
)
