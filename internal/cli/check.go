package cli

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/generator"
	"github.com/seitarof/gen-manipulator/internal/resolver"
	"github.com/seitarof/gen-manipulator/internal/spec"
)

// Checker regenerates inputs in memory and compares the result with the
// files in the output directory.
type Checker struct {
	fs        afero.Fs
	loader    spec.Loader
	resolver  resolver.Resolver
	generator generator.Generator
	report    *Reporter
	log       *zap.SugaredLogger
}

// NewChecker creates a checker reading existing files from fs.
func NewChecker(
	fs afero.Fs,
	l spec.Loader,
	r resolver.Resolver,
	g generator.Generator,
	rep *Reporter,
	log *zap.SugaredLogger,
) *Checker {
	return &Checker{fs: fs, loader: l, resolver: r, generator: g, report: rep, log: log}
}

// Check returns an error when any input fails or any file is stale.
func (c *Checker) Check(cfg *Config) error {
	if len(cfg.Inputs) == 0 {
		return errNoInputs
	}

	failed, stale := 0, 0
	for _, input := range cfg.Inputs {
		paths, err := c.checkOne(cfg, input)
		if err != nil {
			failed++
			c.log.Errorw("check failed", "input", input, "class", errors.Class(err), "error", err.Error())
			c.report.Failure(input, err)
			continue
		}
		for _, p := range paths {
			stale++
			c.log.Infow("stale file", "input", input, "file", p)
			c.report.Stale(p)
		}
	}

	c.report.Summary(len(cfg.Inputs), failed)
	switch {
	case failed > 0:
		return errors.Newf("%d of %d specifications failed", failed, len(cfg.Inputs))
	case stale > 0:
		return errors.WithHint(
			errors.Newf("%d generated file(s) out of date", stale),
			"run gen-manipulator with the same specs to regenerate",
		)
	}
	return nil
}

func (c *Checker) checkOne(cfg *Config, input string) ([]string, error) {
	m, err := loadAndResolve(c.loader, c.resolver, input)
	if err != nil {
		return nil, err
	}
	files, err := c.generator.Render(m)
	if err != nil {
		return nil, err
	}
	return generator.Compare(c.fs, cfg.OutputDir(), files)
}
