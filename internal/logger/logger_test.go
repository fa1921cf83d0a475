package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbose    bool
	}{
		{name: "console", jsonOutput: false},
		{name: "console verbose", jsonOutput: false, verbose: true},
		{name: "json", jsonOutput: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Logger
			t.Cleanup(func() { Logger = prev })

			if err := Initialize(tt.jsonOutput, tt.verbose); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if Logger == nil {
				t.Fatal("Initialize() did not set Logger")
			}
			enabled := Logger.Desugar().Core().Enabled(zap.DebugLevel)
			if enabled != tt.verbose {
				t.Fatalf("debug enabled = %v, want %v", enabled, tt.verbose)
			}
		})
	}
}

func TestDefaultLoggerIsUsable(t *testing.T) {
	if Logger == nil {
		t.Fatal("Logger is nil at package load")
	}
	Logger.Infow("no-op", "k", "v")
	Cleanup()
}
