package config

// Config is the CLI configuration after every layer has been applied.
type Config struct {
	Include           []string `koanf:"include"`
	Globs             []string `koanf:"globs"`
	Exclude           []string `koanf:"exclude"`
	NoDefaultExcludes bool     `koanf:"no_default_excludes"`
	Recurse           bool     `koanf:"recurse"`
	Output            string   `koanf:"output"`
	Env               string   `koanf:"env"`
}

// Outputs lists the accepted values of Config.Output.
var Outputs = []string{"json", "yaml", "toml"}

// ProjectFiles are the per-directory config names, first match wins.
var ProjectFiles = []string{".expose.toml", "expose.toml"}
