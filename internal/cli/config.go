package cli

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/generator"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. GENMANIP_OUTPUT.
	EnvPrefix = "GENMANIP"
	// ConfigName is the config file looked up in the working directory.
	ConfigName = "gen-manipulator"
)

// Config stores options for one generation run.
type Config struct {
	Inputs        []string
	Output        string
	GeneratorName string
	LineEnding    generator.LineEnding
	Stdout        bool
	List          bool
	JSONLogs      bool
	Verbose       bool
	ConfigFile    string
}

// OutputDir returns the directory generated files are written to.
func (c *Config) OutputDir() string {
	return c.Output
}

// RegisterFlags defines the generation flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", ".", "output directory")
	fs.String("generator", generator.DefaultGeneratorName, "generator name recorded in @Generated")
	fs.String("line-ending", "lf", "line ending of generated files: lf or crlf")
	fs.Bool("stdout", false, "print a txtar archive of the generated files instead of writing them")
	fs.Bool("list", false, "read a newline-delimited list of spec paths from stdin")
	fs.Bool("json-logs", false, "log as JSON")
	fs.BoolP("verbose", "v", false, "enable debug logging")
	fs.String("config", "", "config file (default ./"+ConfigName+".toml)")
}

// Load merges defaults, the config file, GENMANIP_* environment
// variables and the flags set on fs, in increasing priority.
func Load(fs *pflag.FlagSet, inputs []string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	configFile, _ := fs.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "read config %s", v.ConfigFileUsed())
		}
	}

	eol, err := generator.ParseLineEnding(v.GetString("line-ending"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Inputs:        cleanInputs(inputs),
		Output:        v.GetString("output"),
		GeneratorName: v.GetString("generator"),
		LineEnding:    eol,
		Stdout:        v.GetBool("stdout"),
		List:          v.GetBool("list"),
		JSONLogs:      v.GetBool("json-logs"),
		Verbose:       v.GetBool("verbose"),
		ConfigFile:    v.ConfigFileUsed(),
	}
	if strings.TrimSpace(cfg.Output) == "" {
		cfg.Output = "."
	}
	return cfg, nil
}

func cleanInputs(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
