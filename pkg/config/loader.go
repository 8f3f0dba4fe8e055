package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/expose/pkg/errors"
	"github.com/arthur-debert/expose/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables mapped onto config keys.
const EnvPrefix = "EXPOSE_"

// LoadOptions locates the config layers. Zero values use the process
// defaults.
type LoadOptions struct {
	// ConfigHome replaces xdg.ConfigHome.
	ConfigHome string

	// WorkDir is searched for ProjectFiles. Empty means the working directory.
	WorkDir string

	// File is an explicit config file; it must exist.
	File string
}

// GlobalPath returns the global config file location.
func GlobalPath(configHome string) string {
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "expose", "config.toml")
}

// Load merges, in increasing priority: embedded defaults, the global
// config, the project config, the explicit file and EXPOSE_* variables.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Global config if it exists
	if err := loadIfExists(k, GlobalPath(opts.ConfigHome)); err != nil {
		return nil, err
	}

	// 3. Project config if it exists
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot determine working directory")
		}
		workDir = wd
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			break
		}
	}

	// 4. Explicit file
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.File)
		}
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
	}

	// 5. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("include", cfg.Include).
		Strs("exclude", cfg.Exclude).
		Bool("recurse", cfg.Recurse).
		Str("output", cfg.Output).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, path)
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func validate(cfg *Config) error {
	for _, o := range Outputs {
		if cfg.Output == o {
			return nil
		}
	}
	return errors.Newf(errors.ErrConfigParse, "unknown output format %q (want one of %s)",
		cfg.Output, strings.Join(Outputs, ", "))
}
