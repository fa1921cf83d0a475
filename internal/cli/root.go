package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/generator"
	"github.com/seitarof/gen-manipulator/internal/logger"
	"github.com/seitarof/gen-manipulator/internal/picker"
	"github.com/seitarof/gen-manipulator/internal/resolver"
	"github.com/seitarof/gen-manipulator/internal/spec"
)

// PickFunc asks the operator for spec paths interactively.
type PickFunc func(dir string, in io.Reader, out io.Writer) ([]string, error)

// Env is the process environment a command runs in.
type Env struct {
	Fs    afero.Fs
	In    io.Reader
	Out   io.Writer
	Err   io.Writer
	IsTTY func() bool
	Pick  PickFunc
}

// DefaultEnv uses the OS filesystem, standard streams and the terminal picker.
func DefaultEnv() Env {
	return Env{
		Fs:  afero.NewOsFs(),
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		IsTTY: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		Pick: func(dir string, in io.Reader, out io.Writer) ([]string, error) {
			return picker.Run(dir, spec.Extensions, in, out)
		},
	}
}

// NewRootCommand builds the gen-manipulator command and its check subcommand.
func NewRootCommand(version string, env Env) *cobra.Command {
	root := &cobra.Command{
		Use:   "gen-manipulator [flags] [spec...]",
		Short: "Generate Sponge data manipulators from field specifications",
		Long: `Generate a data holder (mutable, immutable and builder) and its key
registry from a YAML, TOML or JSON field specification.

With no paths, an interactive picker opens on a terminal; otherwise one
path per line is read from stdin until an empty line.

Examples:
  gen-manipulator HomeData.yaml                # Write HomeData.java and HomeKeys.java
  gen-manipulator -o src/main/java/x specs/*.yaml
  find specs -name '*.yaml' | gen-manipulator --list
  gen-manipulator --stdout HomeData.yaml       # Print a txtar archive
  gen-manipulator check specs/*.yaml           # Verify generated files are current`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args, env)
			if err != nil {
				return err
			}
			defer logger.Cleanup()
			return runGenerate(cfg, env)
		},
	}
	RegisterFlags(root.PersistentFlags())

	check := &cobra.Command{
		Use:   "check [spec...]",
		Short: "Check that generated files are up to date",
		Long: `Regenerate each specification in memory and compare the result with
the files in the output directory, ignoring @Generated stamp lines.

Exit codes:
  0 - Files are up to date
  1 - Files are missing, out of date, or a specification failed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args, env)
			if err != nil {
				return err
			}
			defer logger.Cleanup()
			return runCheck(cfg, env)
		},
	}
	root.AddCommand(check)

	root.SetIn(env.In)
	root.SetOut(env.Out)
	root.SetErr(env.Err)
	return root
}

func setup(cmd *cobra.Command, args []string, env Env) (*Config, error) {
	cfg, err := Load(cmd.Flags(), args)
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(cfg.JSONLogs, cfg.Verbose); err != nil {
		return nil, errors.Wrap(err, "initialize logger")
	}
	if len(cfg.Inputs) == 0 {
		cfg.Inputs, err = collectInputs(cfg, env)
		if err != nil {
			return nil, err
		}
	}
	logger.Logger.Debugw("configuration",
		"output", cfg.Output,
		"generator", cfg.GeneratorName,
		"config", cfg.ConfigFile,
		"inputs", cfg.Inputs,
	)
	return cfg, nil
}

const listPrompt = "Enter a list of files; end with an empty line"

func collectInputs(cfg *Config, env Env) ([]string, error) {
	tty := env.IsTTY != nil && env.IsTTY()
	if !cfg.List && tty && env.Pick != nil {
		return env.Pick(".", env.In, env.Err)
	}
	if tty {
		pterm.Fprintln(env.Err, listPrompt)
	}
	return ReadPathList(env.In)
}

func newGenerator(cfg *Config, w generator.FileWriter) generator.Generator {
	return generator.New(
		generator.NewJavaFormatter(cfg.LineEnding),
		w,
		generator.WithGeneratorName(cfg.GeneratorName),
	)
}

func runGenerate(cfg *Config, env Env) error {
	var (
		w       generator.FileWriter = generator.NewFileWriter(env.Fs)
		archive *generator.ArchiveWriter
		report  = NewReporter(env.Out)
	)
	if cfg.Stdout {
		archive = generator.NewArchiveWriter()
		w = archive
		report = NewReporter(env.Err)
	}

	runner := NewRunner(spec.NewLoader(env.Fs), resolver.New(), newGenerator(cfg, w), report, logger.Logger)
	err := runner.Run(cfg)
	if archive != nil && archive.Len() > 0 {
		if _, werr := env.Out.Write(archive.Bytes()); werr != nil && err == nil {
			err = errors.Wrap(werr, "write archive")
		}
	}
	return err
}

func runCheck(cfg *Config, env Env) error {
	checker := NewChecker(
		env.Fs,
		spec.NewLoader(env.Fs),
		resolver.New(),
		newGenerator(cfg, generator.NewArchiveWriter()),
		NewReporter(env.Out),
		logger.Logger,
	)
	return checker.Check(cfg)
}
