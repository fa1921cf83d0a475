// Package model holds the resolved, immutable description of a data
// holder. Each resolution stage returns a richer value than the one it
// received: TypedField, then KeyedField, then ResolvedField.
package model

import (
	"unicode"
	"unicode/utf8"

	"github.com/seitarof/gen-manipulator/internal/spec"
)

// TypedField is a field after type resolution.
type TypedField struct {
	Source spec.Field

	Name      string
	Transient bool
	Optional  bool

	// Code is the type code as written in the input ("I", "java.util.List").
	Code string
	// QualifiedHead is Code without generic arguments. Defaults and
	// persistence accessors are looked up by it.
	QualifiedHead string
	// Primitive reports whether Code is a reserved primitive code.
	Primitive bool

	FullType   string
	BoxedType  string
	NonGeneric string
	Kind       Kind

	// Inner and InnerHead are set for List and Set kinds.
	Inner     string
	InnerHead string

	// TypeImports are the qualified names referenced by Code.
	TypeImports []string
}

// Family returns the value family selected by the field's kind.
func (f TypedField) Family() ValueFamily { return f.Kind.Family() }

// ItemType is the element type a key of this field carries.
func (f TypedField) ItemType() string {
	if f.Kind == KindOptional {
		return "Optional<" + f.BoxedType + ">"
	}
	return f.BoxedType
}

// StorageType is the declared type of the backing field. Optional fields
// hold the boxed type so they can be null.
func (f TypedField) StorageType() string {
	if f.Optional {
		return f.BoxedType
	}
	return f.FullType
}

// ExposedType is the getter's return type.
func (f TypedField) ExposedType() string {
	if f.Kind == KindOptional {
		return f.ItemType()
	}
	return f.FullType
}

// ValueType is the mutable value wrapper, e.g. "ListValue<String>".
func (f TypedField) ValueType() string {
	return f.Family().Mutable + f.valueArgs()
}

// ImmutableValueType is the immutable value wrapper.
func (f TypedField) ImmutableValueType() string {
	return f.Family().Immutable + f.valueArgs()
}

func (f TypedField) valueArgs() string {
	if f.Kind.IsContainer() {
		return f.FullType[len(f.NonGeneric):]
	}
	return "<" + f.BoxedType + ">"
}

// Capitalized returns Name with its first letter upper-cased.
func (f TypedField) Capitalized() string {
	r, size := utf8.DecodeRuneInString(f.Name)
	if r == utf8.RuneError {
		return f.Name
	}
	return string(unicode.ToUpper(r)) + f.Name[size:]
}

// Getter returns the accessor method name ("isEnabled", "getCount").
func (f TypedField) Getter() string {
	if f.Code == "Z" {
		return "is" + f.Capitalized()
	}
	return "get" + f.Capitalized()
}

// Setter returns the mutator method name.
func (f TypedField) Setter() string { return "set" + f.Capitalized() }

// Key is the externally addressable identity of a field.
type Key struct {
	Name        string
	Query       string
	ID          string
	DisplayName string
	Reference   string
}

// KeyedField is a field after key derivation.
type KeyedField struct {
	TypedField
	Key Key
}

// ResolvedField is a field after default value resolution.
type ResolvedField struct {
	KeyedField
	Default        string
	DefaultImports []string
}

// Manipulator is a fully resolved specification, read-only during synthesis.
type Manipulator struct {
	Source         string
	Class          string
	Package        string
	KeyClass       string
	PluginID       string
	ContentVersion int
	Imports        []string
	Fields         []ResolvedField
}

// Persisted returns the fields taking part in the container round trip.
func (m *Manipulator) Persisted() []ResolvedField {
	out := make([]ResolvedField, 0, len(m.Fields))
	for _, f := range m.Fields {
		if !f.Transient {
			out = append(out, f)
		}
	}
	return out
}

// HasOptional reports whether any field is optional.
func (m *Manipulator) HasOptional() bool {
	for _, f := range m.Fields {
		if f.Optional {
			return true
		}
	}
	return false
}

// Undefaulted returns the non-optional fields left without a default.
func (m *Manipulator) Undefaulted() []ResolvedField {
	var out []ResolvedField
	for _, f := range m.Fields {
		if !f.Optional && f.Default == "" {
			out = append(out, f)
		}
	}
	return out
}
