package cli

import (
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/generator"
	"github.com/seitarof/gen-manipulator/internal/model"
	"github.com/seitarof/gen-manipulator/internal/resolver"
	"github.com/seitarof/gen-manipulator/internal/spec"
)

// Runner orchestrates loader/resolver/generator layers over a batch of
// inputs. A failing input does not stop the batch.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	loader    spec.Loader
	resolver  resolver.Resolver
	generator generator.Generator
	report    *Reporter
	log       *zap.SugaredLogger
}

// NewRunner creates a default runner implementation.
func NewRunner(
	l spec.Loader,
	r resolver.Resolver,
	g generator.Generator,
	rep *Reporter,
	log *zap.SugaredLogger,
) Runner {
	return &runnerImpl{
		loader:    l,
		resolver:  r,
		generator: g,
		report:    rep,
		log:       log,
	}
}

var errNoInputs = errors.WithHint(
	errors.New("no input specifications"),
	"pass spec paths as arguments or pipe one path per line on stdin",
)

// Run generates every input of cfg and returns an error when any failed.
func (r *runnerImpl) Run(cfg *Config) error {
	if len(cfg.Inputs) == 0 {
		return errNoInputs
	}

	failed := 0
	for _, input := range cfg.Inputs {
		if err := r.runOne(cfg, input); err != nil {
			failed++
			r.log.Errorw("generation failed",
				"input", input,
				"class", errors.Class(err),
				"error", err.Error(),
			)
			r.report.Failure(input, err)
		}
	}

	r.report.Summary(len(cfg.Inputs), failed)
	if failed > 0 {
		return errors.Newf("%d of %d specifications failed", failed, len(cfg.Inputs))
	}
	return nil
}

func (r *runnerImpl) runOne(cfg *Config, input string) error {
	m, err := loadAndResolve(r.loader, r.resolver, input)
	if err != nil {
		return err
	}
	dumpModel(r.log, input, m)
	warnSoftGaps(r.log, r.report, input, m)

	written, err := r.generator.Generate(cfg, m)
	for _, path := range written {
		r.log.Infow("generated", "input", input, "file", path)
		r.report.Generated(path)
	}
	return err
}

func loadAndResolve(l spec.Loader, res resolver.Resolver, input string) (*model.Manipulator, error) {
	raw, err := l.Load(input)
	if err != nil {
		return nil, err
	}
	return res.Resolve(raw, input)
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dumpModel(log *zap.SugaredLogger, input string, m *model.Manipulator) {
	if !log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		return
	}
	log.Debugw("resolved model", "input", input, "model", dumper.Sdump(m))
}

// warnSoftGaps reports fields that resolve but will not behave as the
// author may expect.
func warnSoftGaps(log *zap.SugaredLogger, rep *Reporter, input string, m *model.Manipulator) {
	for _, f := range m.Undefaulted() {
		log.Warnw("field has no default value", "input", input, "field", f.Name, "type", f.Code)
		rep.Warning(input, "field "+f.Name+" ("+f.Code+") has no default; the no-argument constructor leaves it unset")
	}
	for _, f := range m.Fields {
		if f.Optional && f.Source.Default != "" {
			log.Warnw("default ignored for optional field", "input", input, "field", f.Name)
			rep.Warning(input, "field "+f.Name+" is optional; its default is ignored")
		}
	}
}
