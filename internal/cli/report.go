package cli

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/seitarof/gen-manipulator/internal/errors"
)

// Reporter prints operator-facing progress lines.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Generated reports a written file.
func (r *Reporter) Generated(path string) {
	pterm.Fprintln(r.out, pterm.LightGreen("✓ Generated"), path)
}

// Warning reports a non-fatal problem with an input.
func (r *Reporter) Warning(input, msg string) {
	pterm.Fprintln(r.out, pterm.Yellow("! "+input+":"), msg)
}

// Failure reports a failed input with its cause and hints.
func (r *Reporter) Failure(input string, err error) {
	pterm.Fprintln(r.out, pterm.Red("✗ "+input+":"), err.Error())
	if hint := errors.FlattenHints(err); hint != "" {
		pterm.Fprintln(r.out, " ", pterm.Gray("hint:"), hint)
	}
}

// Stale reports a generated file that no longer matches its spec.
func (r *Reporter) Stale(path string) {
	pterm.Fprintln(r.out, pterm.Red("✗ Out of date"), path)
}

// Summary reports the batch result.
func (r *Reporter) Summary(total, failed int) {
	if failed == 0 {
		pterm.Fprintln(r.out, pterm.LightGreen("✓"), pterm.Sprintf("%d specification(s) processed", total))
		return
	}
	pterm.Fprintln(r.out, pterm.Red("✗"), pterm.Sprintf("%d of %d specification(s) failed", failed, total))
}
