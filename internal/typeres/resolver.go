// Package typeres expands a field's type code into the full, boxed and
// structural description used by the rest of the pipeline.
package typeres

import (
	"strings"

	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/model"
	"github.com/seitarof/gen-manipulator/internal/spec"
)

// Primitive is the full and boxed spelling of a primitive code.
type Primitive struct {
	Full  string
	Boxed string
}

// PrimitiveTable maps reserved single-letter codes to their spellings.
type PrimitiveTable map[string]Primitive

// DefaultPrimitives returns a fresh copy of the built-in primitive codes.
func DefaultPrimitives() PrimitiveTable {
	return PrimitiveTable{
		"I": {Full: "int", Boxed: "Integer"},
		"Z": {Full: "boolean", Boxed: "Boolean"},
		"D": {Full: "double", Boxed: "Double"},
		"F": {Full: "float", Boxed: "Float"},
		"L": {Full: "long", Boxed: "Long"},
		"C": {Full: "char", Boxed: "Character"},
		"S": {Full: "short", Boxed: "Short"},
		"B": {Full: "byte", Boxed: "Byte"},
	}
}

// Lookup finds code either as a reserved code or as a full primitive
// spelling ("int"), returning the canonical code.
func (t PrimitiveTable) Lookup(code string) (Primitive, string, bool) {
	if p, ok := t[code]; ok {
		return p, code, true
	}
	for c, p := range t {
		if p.Full == code {
			return p, c, true
		}
	}
	return Primitive{}, "", false
}

// Resolver is the type resolution stage.
type Resolver struct {
	primitives PrimitiveTable
}

// New creates a Resolver. A nil table selects DefaultPrimitives.
func New(primitives PrimitiveTable) *Resolver {
	if primitives == nil {
		primitives = DefaultPrimitives()
	}
	return &Resolver{primitives: primitives}
}

// Resolve derives the type description of f. f is not modified.
func (r *Resolver) Resolve(f spec.Field) (model.TypedField, error) {
	code := strings.TrimSpace(f.Type)
	if code == "" {
		return model.TypedField{}, invalid(f.Name, "type is required")
	}

	tf := model.TypedField{
		Source:    f,
		Name:      f.Name,
		Transient: f.Transient,
		Optional:  f.Optional,
		Code:      code,
	}

	var full, boxed string
	if p, canonical, ok := r.primitives.Lookup(code); ok {
		tf.Code = canonical
		tf.QualifiedHead = canonical
		tf.Primitive = true
		full, boxed = p.Full, p.Boxed
	} else {
		expr, err := ParseType(code)
		if err != nil {
			return model.TypedField{}, invalid(f.Name, err.Error())
		}
		tf.QualifiedHead = expr.Name + strings.Repeat("[]", expr.Dims)
		tf.TypeImports = expr.Imports()
		full = expr.Simple()
	}

	if explicit := strings.TrimSpace(f.FullType); explicit != "" {
		full = explicit
	}
	fullExpr, err := ParseType(full)
	if err != nil {
		return model.TypedField{}, invalid(f.Name, "full-type: "+err.Error())
	}
	tf.FullType = full
	tf.NonGeneric = Head(full)

	if boxed == "" {
		boxed = full
		if p, _, ok := r.primitives.Lookup(full); ok {
			boxed = p.Boxed
		}
	}
	tf.BoxedType = boxed

	if f.Optional {
		tf.Kind = model.KindOptional
		return tf, nil
	}

	if fullExpr.Dims > 0 {
		tf.Kind = model.KindScalar
		return tf, nil
	}
	tf.Kind = model.KindForHead(SimpleName(tf.NonGeneric))
	if tf.Kind == model.KindList || tf.Kind == model.KindSet {
		tf.InnerHead = "Object"
		if len(fullExpr.Args) == 1 {
			tf.Inner = fullExpr.Args[0].String()
			tf.InnerHead = fullExpr.Args[0].Name
		}
	}
	return tf, nil
}

func invalid(field, msg string) error {
	return errors.Mark(errors.Newf("field %q: %s", field, msg), errors.ErrInvalidSpec)
}
