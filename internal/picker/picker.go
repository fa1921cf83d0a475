// Package picker is the interactive spec file selector shown when no
// paths are given on a terminal.
package picker

import (
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seitarof/gen-manipulator/internal/errors"
)

// ErrCancelled is returned when the operator aborts with ctrl+c.
var ErrCancelled = errors.New("selection cancelled")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model lets the operator toggle any number of spec files.
type Model struct {
	picker    filepicker.Model
	selected  []string
	done      bool
	cancelled bool
}

// New creates a picker rooted at dir accepting files with extensions exts.
func New(dir string, exts []string) Model {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = exts
	fp.ShowHidden = false
	return Model{picker: fp}
}

func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "q", "ctrl+d":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m = m.toggle(path)
	}
	return m, cmd
}

// toggle adds path to the selection, or removes it if already selected.
func (m Model) toggle(path string) Model {
	if i := slices.Index(m.selected, path); i >= 0 {
		m.selected = slices.Delete(slices.Clone(m.selected), i, i+1)
		return m
	}
	m.selected = append(slices.Clone(m.selected), path)
	return m
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select specifications"))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	for _, p := range m.selected {
		b.WriteString(selectedStyle.Render("✓ " + filepath.Base(p)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: toggle • q: done • ctrl+c: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen paths in selection order.
func (m Model) Selected() []string { return slices.Clone(m.selected) }

// Done reports whether the operator finished the selection.
func (m Model) Done() bool { return m.done }

// Cancelled reports whether the operator aborted.
func (m Model) Cancelled() bool { return m.cancelled }

// Run shows the picker on in/out and returns the selected paths.
func Run(dir string, exts []string, in io.Reader, out io.Writer) ([]string, error) {
	p := tea.NewProgram(New(dir, exts), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, errors.Wrap(err, "run picker")
	}
	m, ok := final.(Model)
	if !ok {
		return nil, errors.Newf("unexpected picker model %T", final)
	}
	if m.Cancelled() {
		return nil, ErrCancelled
	}
	return m.Selected(), nil
}
