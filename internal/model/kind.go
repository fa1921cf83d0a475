package model

import "fmt"

// Kind is the structural shape of a field's value.
type Kind int

const (
	KindScalar Kind = iota
	KindList
	KindSet
	KindMap
	KindOptional
)

const (
	mutableValuePkg   = "org.spongepowered.api.data.value.mutable."
	immutableValuePkg = "org.spongepowered.api.data.value.immutable."
)

// ValueFamily names the value wrapper types and key factory used for one
// Kind. The data holder, its immutable twin and the key registry all read
// from the same family so their generic types agree.
type ValueFamily struct {
	Mutable    string
	Immutable  string
	KeyFactory string
}

// MutableImport returns the fully qualified mutable wrapper.
func (f ValueFamily) MutableImport() string { return mutableValuePkg + f.Mutable }

// ImmutableImport returns the fully qualified immutable wrapper.
func (f ValueFamily) ImmutableImport() string { return immutableValuePkg + f.Immutable }

// FactoryMethod is the ValueFactory method creating a mutable wrapper.
func (f ValueFamily) FactoryMethod() string { return "create" + f.Mutable }

// KeyMethod is the KeyFactory method creating a key of this family.
func (f ValueFamily) KeyMethod() string { return "make" + f.KeyFactory + "Key" }

var families = map[Kind]ValueFamily{
	KindScalar:   {Mutable: "Value", Immutable: "ImmutableValue", KeyFactory: "Single"},
	KindList:     {Mutable: "ListValue", Immutable: "ImmutableListValue", KeyFactory: "List"},
	KindSet:      {Mutable: "SetValue", Immutable: "ImmutableSetValue", KeyFactory: "Set"},
	KindMap:      {Mutable: "MapValue", Immutable: "ImmutableMapValue", KeyFactory: "Map"},
	KindOptional: {Mutable: "OptionalValue", Immutable: "ImmutableOptionalValue", KeyFactory: "Optional"},
}

// Family returns the value family for k.
func (k Kind) Family() ValueFamily {
	f, ok := families[k]
	if !ok {
		panic(fmt.Sprintf("model: unknown kind %d", int(k)))
	}
	return f
}

// IsContainer reports whether k wraps a generic collection type.
func (k Kind) IsContainer() bool {
	return k == KindList || k == KindSet || k == KindMap
}

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// KindForHead maps an unparameterised type head to its container kind.
func KindForHead(head string) Kind {
	switch head {
	case "List":
		return KindList
	case "Set":
		return KindSet
	case "Map":
		return KindMap
	default:
		return KindScalar
	}
}
