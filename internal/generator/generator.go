// Package generator renders a resolved manipulator into its data holder
// and key registry source files.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/model"
)

//go:embed templates/*.java.tmpl
var templateFS embed.FS

// DefaultGeneratorName is stamped into generated files unless overridden.
const DefaultGeneratorName = "gen-manipulator"

// Generator generates source files from a resolved manipulator.
type Generator interface {
	Render(m *model.Manipulator) ([]File, error)
	Generate(cfg Config, m *model.Manipulator) ([]string, error)
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputDir() string
}

// Formatter normalises a rendered file.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes a generated file.
type FileWriter interface {
	Write(filename string, data []byte) error
}

// File is one rendered artifact. Name is relative to the output directory.
type File struct {
	Name string
	Data []byte
}

// Option customises a generator.
type Option func(*generatorImpl)

// WithClock sets the time source of the generation stamp.
func WithClock(now func() time.Time) Option {
	return func(g *generatorImpl) { g.now = now }
}

// WithGeneratorName sets the generator identity in the stamp.
func WithGeneratorName(name string) Option {
	return func(g *generatorImpl) {
		if name != "" {
			g.name = name
		}
	}
}

// WithAccessors replaces the DataView read lookup tables.
func WithAccessors(a *Accessors) Option {
	return func(g *generatorImpl) { g.accessors = a }
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
	accessors *Accessors
	now       func() time.Time
	name      string
}

type fieldData struct {
	model.ResolvedField
	Read       string
	Query      string
	ItemToken  string
	ValueToken string
}

type templateData struct {
	*model.Manipulator
	Stamp           string
	Imports         []string
	Params          string
	Args            string
	Fields          []fieldData
	PersistedFields []fieldData
	Tokens          []typeToken
}

// New creates a code generator.
func New(f Formatter, w FileWriter, opts ...Option) Generator {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"quote": javaString,
	}).ParseFS(templateFS, "templates/*.java.tmpl"))
	g := &generatorImpl{
		formatter: f,
		writer:    w,
		tmpl:      tmpl,
		accessors: DefaultAccessors(),
		now:       time.Now,
		name:      DefaultGeneratorName,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Render returns the key registry followed by the data holder, both
// formatted. Nothing is written.
func (g *generatorImpl) Render(m *model.Manipulator) ([]File, error) {
	if m == nil || len(m.Fields) == 0 {
		return nil, errors.New("no fields to generate")
	}

	data := g.buildTemplateData(m)
	keys, err := g.render("keys.java.tmpl", m.KeyClass+".java", data, keyImports(m))
	if err != nil {
		return nil, err
	}
	holder, err := g.render("holder.java.tmpl", m.Class+".java", data, holderImports(m))
	if err != nil {
		return nil, err
	}
	return []File{keys, holder}, nil
}

// Generate renders m and writes the key registry, then the data holder.
// It returns the paths written; when the holder fails the key registry
// stays on disk.
func (g *generatorImpl) Generate(cfg Config, m *model.Manipulator) ([]string, error) {
	files, err := g.Render(m)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(cfg.OutputDir(), f.Name)
		if err := g.writer.Write(path, f.Data); err != nil {
			return written, errors.Wrapf(err, "write %s", f.Name)
		}
		written = append(written, path)
	}
	return written, nil
}

func (g *generatorImpl) render(name, filename string, data templateData, imports []string) (File, error) {
	data.Imports = imports
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return File{}, errors.Wrapf(err, "template %s", name)
	}
	formatted, err := g.formatter.Format(filename, buf.Bytes())
	if err != nil {
		return File{}, errors.Wrap(err, "format")
	}
	return File{Name: filename, Data: formatted}, nil
}

func (g *generatorImpl) buildTemplateData(m *model.Manipulator) templateData {
	tokens := newTokenSet()
	fields := make([]fieldData, 0, len(m.Fields))
	persisted := make([]fieldData, 0, len(m.Fields))
	params := make([]string, 0, len(m.Fields))
	args := make([]string, 0, len(m.Fields))

	for _, f := range m.Fields {
		fd := fieldData{
			ResolvedField: f,
			Read:          g.accessors.Read(f),
			Query:         queryExpr(f.Key.Query),
			ItemToken:     tokens.name(f.ItemType()),
			ValueToken:    tokens.name(f.ValueType()),
		}
		fields = append(fields, fd)
		if !f.Transient {
			persisted = append(persisted, fd)
		}
		params = append(params, f.StorageType()+" "+f.Name)
		args = append(args, f.Name)
	}

	return templateData{
		Manipulator:     m,
		Stamp:           fmt.Sprintf("@Generated(value = %s, date = %s)", javaString(g.name), javaString(g.now().UTC().Format(time.RFC3339))),
		Params:          strings.Join(params, ", "),
		Args:            strings.Join(args, ", "),
		Fields:          fields,
		PersistedFields: persisted,
		Tokens:          tokens.list,
	}
}

// queryExpr builds the DataQuery for a query path; dotted paths are split
// into nested segments.
func queryExpr(query string) string {
	if strings.Contains(query, ".") {
		return "DataQuery.of('.', " + javaString(query) + ")"
	}
	return "DataQuery.of(" + javaString(query) + ")"
}

var javaEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

func javaString(s string) string {
	return `"` + javaEscaper.Replace(s) + `"`
}
