package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seitarof/gen-manipulator/internal/generator"
)

func parseArgs(args []string) (*Config, error) {
	fs := pflag.NewFlagSet(ConfigName, pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return Load(fs, fs.Args())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := parseArgs([]string{"a.yaml", " ", "b.toml"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.yaml", "b.toml"}, cfg.Inputs)
	assert.Equal(t, ".", cfg.OutputDir())
	assert.Equal(t, generator.DefaultGeneratorName, cfg.GeneratorName)
	assert.Equal(t, generator.LF, cfg.LineEnding)
	assert.False(t, cfg.Stdout)
	assert.False(t, cfg.List)
	assert.False(t, cfg.Verbose)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := parseArgs([]string{
		"-o", "src/main/java",
		"--generator", "homes-build",
		"--line-ending", "crlf",
		"--stdout", "--list", "--json-logs", "-v",
		"HomeData.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "src/main/java", cfg.Output)
	assert.Equal(t, "homes-build", cfg.GeneratorName)
	assert.Equal(t, generator.CRLF, cfg.LineEnding)
	assert.True(t, cfg.Stdout)
	assert.True(t, cfg.List)
	assert.True(t, cfg.JSONLogs)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"HomeData.yaml"}, cfg.Inputs)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GENMANIP_OUTPUT", "env-out")
	t.Setenv("GENMANIP_LINE_ENDING", "crlf")

	cfg, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, "env-out", cfg.Output)
	assert.Equal(t, generator.CRLF, cfg.LineEnding)

	cfg, err = parseArgs([]string{"--output", "flag-out"})
	require.NoError(t, err)
	assert.Equal(t, "flag-out", cfg.Output, "flags take precedence over the environment")
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("output = \"from-file\"\ngenerator = \"file-gen\"\n"), 0o644))

	cfg, err := parseArgs([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Output)
	assert.Equal(t, "file-gen", cfg.GeneratorName)
	assert.Equal(t, path, cfg.ConfigFile)

	t.Setenv("GENMANIP_OUTPUT", "env-out")
	cfg, err = parseArgs([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "env-out", cfg.Output, "the environment takes precedence over the config file")
}

func TestLoad_Errors(t *testing.T) {
	_, err := parseArgs([]string{"--line-ending", "cr"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err, "an explicit config file must exist")

	_, err = parseArgs([]string{"--no-such-flag"})
	assert.Error(t, err)
}
