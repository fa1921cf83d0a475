// Package resolver turns a decoded specification into the resolved model
// by running the type, key and default stages over every field.
package resolver

import (
	"strings"

	"github.com/seitarof/gen-manipulator/internal/defaults"
	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/keys"
	"github.com/seitarof/gen-manipulator/internal/model"
	"github.com/seitarof/gen-manipulator/internal/spec"
	"github.com/seitarof/gen-manipulator/internal/typeres"
)

// Resolver resolves one decoded specification.
type Resolver interface {
	Resolve(raw *spec.Manipulator, source string) (*model.Manipulator, error)
}

// Option customises a Resolver.
type Option func(*resolverImpl)

// WithPrimitives replaces the primitive code table.
func WithPrimitives(table typeres.PrimitiveTable) Option {
	return func(r *resolverImpl) { r.types = typeres.New(table) }
}

// WithDefaultRules replaces the default value rule chain.
func WithDefaultRules(rules ...defaults.Rule) Option {
	return func(r *resolverImpl) { r.defaults = defaults.New(rules...) }
}

type resolverImpl struct {
	types    *typeres.Resolver
	keys     *keys.Deriver
	defaults *defaults.Resolver
}

// New builds a resolver using the built-in tables unless overridden.
func New(opts ...Option) Resolver {
	r := &resolverImpl{
		types:    typeres.New(nil),
		keys:     keys.New(),
		defaults: defaults.New(defaults.DefaultRules()...),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultContentVersion is used when a spec does not set content-version.
const DefaultContentVersion = 1

func (r *resolverImpl) Resolve(raw *spec.Manipulator, source string) (*model.Manipulator, error) {
	if raw == nil {
		return nil, invalidf("%s: empty specification", source)
	}
	if len(raw.Fields) == 0 {
		return nil, errors.WithHint(invalidf("%s: no fields declared", source), "add at least one entry under fields")
	}

	m := &model.Manipulator{
		Source:         source,
		Class:          strings.TrimSpace(raw.Class),
		Package:        strings.TrimSpace(raw.Package),
		KeyClass:       strings.TrimSpace(raw.KeyClass),
		PluginID:       strings.TrimSpace(raw.PluginID),
		ContentVersion: raw.ContentVersion,
		Imports:        cleanImports(raw.Imports),
	}
	if m.Class == "" {
		m.Class = ClassName(source)
	}
	if m.KeyClass == "" {
		m.KeyClass = KeyClassName(m.Class)
	}
	if m.ContentVersion == 0 {
		m.ContentVersion = DefaultContentVersion
	}
	if err := validateHeader(m); err != nil {
		return nil, err
	}

	ns := keys.Namespace{PluginID: m.PluginID, KeyClass: m.KeyClass}
	m.Fields = make([]model.ResolvedField, 0, len(raw.Fields))
	for i, f := range raw.Fields {
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			return nil, invalidf("field #%d: name is required", i+1)
		}
		if !IsIdentifier(f.Name) {
			return nil, invalidf("field %q: name is not a valid identifier", f.Name)
		}

		typed, err := r.types.Resolve(f)
		if err != nil {
			return nil, err
		}
		keyed := r.keys.Derive(typed, ns)
		if !IsIdentifier(keyed.Key.Name) {
			return nil, invalidf("field %q: key name %q is not a valid identifier", f.Name, keyed.Key.Name)
		}
		m.Fields = append(m.Fields, r.defaults.Resolve(keyed))
	}

	if err := checkConflicts(m.Fields); err != nil {
		return nil, err
	}
	return m, nil
}

func validateHeader(m *model.Manipulator) error {
	if !IsIdentifier(m.Class) {
		return errors.WithHint(
			invalidf("class name %q is not a valid identifier", m.Class),
			"set class explicitly or rename the spec file",
		)
	}
	if !IsIdentifier(m.KeyClass) {
		return invalidf("key class name %q is not a valid identifier", m.KeyClass)
	}
	if m.Class == m.KeyClass {
		return invalidf("class and key class are both %q", m.Class)
	}
	if m.Package != "" && !IsQualifiedName(m.Package) {
		return invalidf("package %q is not a valid qualified name", m.Package)
	}
	if m.ContentVersion < 0 {
		return invalidf("content-version must be positive, got %d", m.ContentVersion)
	}
	for _, imp := range m.Imports {
		if !IsQualifiedName(strings.TrimSuffix(imp, ".*")) {
			return invalidf("import %q is not a valid qualified name", imp)
		}
	}
	return nil
}

func cleanImports(in []string) []string {
	out := make([]string, 0, len(in))
	for _, imp := range in {
		imp = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(imp), ";"))
		imp = strings.TrimSpace(strings.TrimPrefix(imp, "import "))
		if imp != "" {
			out = append(out, imp)
		}
	}
	return out
}

func invalidf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), errors.ErrInvalidSpec)
}
