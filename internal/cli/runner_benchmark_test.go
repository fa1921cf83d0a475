package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/seitarof/gen-manipulator/internal/generator"
	"github.com/seitarof/gen-manipulator/internal/resolver"
	"github.com/seitarof/gen-manipulator/internal/spec"
)

func BenchmarkRunnerRun_EndToEnd(b *testing.B) {
	fs := afero.NewMemMapFs()
	mustWrite(b, fs, "HomeData.yaml", homeYAML)

	runner := NewRunner(
		spec.NewLoader(fs),
		resolver.New(),
		generator.New(generator.NewJavaFormatter(generator.LF), generator.NewFileWriter(fs)),
		NewReporter(&bytes.Buffer{}),
		zap.NewNop().Sugar(),
	)
	cfg := &Config{Output: "gen", Inputs: []string{"HomeData.yaml"}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := runner.Run(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
