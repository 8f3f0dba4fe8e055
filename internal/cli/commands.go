package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/expose/internal/version"
	"github.com/arthur-debert/expose/pkg/config"
	"github.com/arthur-debert/expose/pkg/expose"
	"github.com/arthur-debert/expose/pkg/filesystem"
	"github.com/arthur-debert/expose/pkg/logging"
	"github.com/arthur-debert/expose/pkg/output"
	"github.com/arthur-debert/expose/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flags holds the values shared by the root and files commands.
type flags struct {
	verbosity  int
	include    []string
	globs      []string
	exclude    []string
	noExclude  bool
	noRecurse  bool
	output     string
	configFile string
}

// NewRootCmd creates and returns the root command. fsys is the filesystem
// modules are read from; nil means the OS filesystem.
func NewRootCmd(fsys types.FS) *cobra.Command {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:     "expose [targets...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := f.verbosity
			if v := logging.VerbosityForEnv(os.Getenv(logging.EnvVar)); v > verbosity {
				verbosity = v
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := prepare(cmd, f, fsys, args)
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(cfg.Output)
			if err != nil {
				return err
			}

			ns, err := expose.Import(opts)
			if err != nil {
				return err
			}
			return newRenderer(cmd.OutOrStdout()).Namespace(ns, format)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringArrayVarP(&f.include, "include", "i", nil, MsgFlagInclude)
	pf.StringArrayVarP(&f.globs, "glob", "g", nil, MsgFlagGlob)
	pf.StringArrayVarP(&f.exclude, "exclude", "x", nil, MsgFlagExclude)
	pf.BoolVar(&f.noExclude, "no-exclude", false, MsgFlagNoExclude)
	pf.BoolVar(&f.noRecurse, "no-recurse", false, MsgFlagNoRecurse)
	pf.StringVarP(&f.output, "output", "o", "json", MsgFlagOutput)
	pf.StringVar(&f.configFile, "config", "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.Outputs, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newFilesCmd(f, fsys))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newFilesCmd(f *flags, fsys types.FS) *cobra.Command {
	return &cobra.Command{
		Use:   "files [targets...]",
		Short: MsgFilesShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := prepare(cmd, f, fsys, args)
			if err != nil {
				return err
			}

			var paths []string
			err = expose.Walk(opts, func(path string) error {
				paths = append(paths, path)
				return nil
			})
			if err != nil {
				return err
			}
			return newRenderer(cmd.OutOrStdout()).Files(paths)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// prepare loads the configuration, applies the flags the user set on top of
// it and converts the result into importer options.
func prepare(cmd *cobra.Command, f *flags, fsys types.FS, args []string) (*config.Config, expose.Options, error) {
	cfg, err := config.Load(config.LoadOptions{File: f.configFile})
	if err != nil {
		return nil, expose.Options{}, err
	}

	// The env key can also come from a config file.
	if v := logging.VerbosityForEnv(cfg.Env); v > f.verbosity && v > logging.VerbosityForEnv(os.Getenv(logging.EnvVar)) {
		logging.SetupLogger(v)
	}

	changed := cmd.Flags().Changed
	if changed("include") {
		cfg.Include = f.include
	}
	if changed("glob") {
		cfg.Globs = f.globs
	}
	if f.noExclude {
		cfg.NoDefaultExcludes = true
		cfg.Exclude = nil
	}
	if changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if f.noRecurse {
		cfg.Recurse = false
	}
	if changed("output") {
		cfg.Output = f.output
	}

	log.Debug().
		Strs("targets", args).
		Strs("include", cfg.Include).
		Strs("globs", cfg.Globs).
		Strs("exclude", cfg.Exclude).
		Bool("recurse", cfg.Recurse).
		Msg("Resolved configuration")

	opts, err := cfg.Options(fsys, args)
	if err != nil {
		return nil, expose.Options{}, err
	}
	return cfg, opts, nil
}

func newRenderer(w io.Writer) *output.Renderer {
	noColor := true
	if file, ok := w.(*os.File); ok {
		noColor = output.NoColor(file)
	}
	return output.NewRenderer(w, noColor)
}
