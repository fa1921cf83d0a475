// Package defaults chooses a default value expression for fields that
// have none.
package defaults

import (
	"github.com/seitarof/gen-manipulator/internal/logger"
	"github.com/seitarof/gen-manipulator/internal/model"
)

// Default is a source expression and the imports it needs to compile.
type Default struct {
	Expr    string
	Imports []string
}

// Rule tries to produce a default for one field.
type Rule interface {
	Name() string
	Try(f model.KeyedField) (Default, bool)
}

// Resolver is the default value stage.
type Resolver struct {
	rules []Rule
}

// New builds a resolver with a rule chain; the first matching rule wins.
func New(rules ...Rule) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve returns f with its default filled in. Optional fields never
// get one; explicit defaults are kept; fields no rule matches are left
// empty.
func (r *Resolver) Resolve(f model.KeyedField) model.ResolvedField {
	rf := model.ResolvedField{KeyedField: f, Default: f.Source.Default}
	if f.Optional {
		rf.Default = ""
		return rf
	}
	if rf.Default != "" {
		return rf
	}
	for _, rule := range r.rules {
		if d, ok := rule.Try(f); ok {
			logger.Logger.Debugw("default resolved", "field", f.Name, "rule", rule.Name(), "default", d.Expr)
			rf.Default = d.Expr
			rf.DefaultImports = append([]string(nil), d.Imports...)
			return rf
		}
	}
	return rf
}
