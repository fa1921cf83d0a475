package generator

import (
	"strings"

	"github.com/seitarof/gen-manipulator/internal/model"
	"github.com/seitarof/gen-manipulator/internal/typeres"
)

// Accessor is a DataView read method. Suffix is appended to the call,
// e.g. a cast from the stored representation.
type Accessor struct {
	Match  string
	Method string
	Suffix string
}

// Accessors chooses the DataView read for each field. Lists are searched
// in order; the first match wins and a typed Object read is the fallback.
type Accessors struct {
	Element []Accessor
	Scalar  []Accessor
}

// DefaultAccessors returns the built-in lookup tables.
func DefaultAccessors() *Accessors {
	return &Accessors{
		Element: []Accessor{
			{Match: "Integer", Method: "getIntegerList"},
			{Match: "Boolean", Method: "getBooleanList"},
			{Match: "Character", Method: "getCharacterList"},
			{Match: "Double", Method: "getDoubleList"},
			{Match: "Long", Method: "getLongList"},
			{Match: "Short", Method: "getShortList"},
			{Match: "String", Method: "getStringList"},
			{Match: "Byte", Method: "getByteList"},
			{Match: "Float", Method: "getFloatList"},
		},
		Scalar: []Accessor{
			{Match: "Z", Method: "getBoolean"},
			{Match: "B", Method: "getByte"},
			{Match: "D", Method: "getDouble"},
			{Match: "F", Method: "getFloat"},
			{Match: "I", Method: "getInt"},
			{Match: "L", Method: "getLong"},
			{Match: "S", Method: "getShort"},
			{Match: "C", Method: "getInt", Suffix: ".map(i -> (char) i.intValue())"},
			{Match: "String", Method: "getString"},
			{Match: "java.lang.String", Method: "getString"},
			{Match: "java.lang.Boolean", Method: "getBoolean"},
			{Match: "java.lang.Integer", Method: "getInt"},
			{Match: "java.lang.Long", Method: "getLong"},
			{Match: "java.lang.Double", Method: "getDouble"},
		},
	}
}

func find(table []Accessor, match string) (Accessor, bool) {
	for _, a := range table {
		if a.Match == match {
			return a, true
		}
	}
	return Accessor{}, false
}

// Read returns the statement restoring f from a DataView named container.
func (a *Accessors) Read(f model.ResolvedField) string {
	query := f.Key.Reference + ".getQuery()"
	var call string
	switch f.Kind {
	case model.KindMap:
		return "container.getMap(" + query + ").ifPresent(v -> " + f.Name + " = (" + f.FullType + ") v); // TODO: unchecked map read"
	case model.KindList, model.KindSet:
		head := typeres.SimpleName(f.InnerHead)
		if acc, ok := find(a.Element, head); ok {
			call = "container." + acc.Method + "(" + query + ")" + acc.Suffix
		} else {
			call = "container.getObjectList(" + query + ", " + head + ".class)"
		}
		if f.Kind == model.KindSet {
			call += ".map(HashSet::new)"
		}
	default:
		if acc, ok := find(a.Scalar, f.QualifiedHead); ok {
			call = "container." + acc.Method + "(" + query + ")" + acc.Suffix
		} else {
			call = "container.getObject(" + query + ", " + classLiteral(f) + ")"
		}
	}
	return call + ".ifPresent(v -> " + f.Name + " = v);"
}

// classLiteral is the raw class of the stored type; primitives read through
// the Object fallback use their boxed class.
func classLiteral(f model.ResolvedField) string {
	head := typeres.Head(f.StorageType())
	if f.Primitive {
		head = f.BoxedType
	}
	return strings.TrimSpace(head) + ".class"
}
