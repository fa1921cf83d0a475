// Package keys derives the key metadata of every field from its name.
// The identifier, query path, display name and stable id all come from
// one segment list so they cannot disagree.
package keys

import (
	"strings"

	"github.com/seitarof/gen-manipulator/internal/model"
)

// Namespace is the manipulator-level context keys are derived in.
type Namespace struct {
	PluginID string
	KeyClass string
}

// Deriver is the key derivation stage.
type Deriver struct{}

// New creates a Deriver.
func New() *Deriver {
	return &Deriver{}
}

// Derive fills every key value the input left empty. Explicit values are
// kept as written.
func (d *Deriver) Derive(f model.TypedField, ns Namespace) model.KeyedField {
	override := f.Source.Key
	key := model.Key{
		Name:        strings.TrimSpace(override.Name),
		Query:       strings.TrimSpace(override.DataQuery),
		ID:          strings.TrimSpace(override.ID),
		DisplayName: strings.TrimSpace(override.DisplayName),
	}

	if key.Name == "" {
		key.Name = Identifier(Segments(f.Name))
	}

	segments := strings.FieldsFunc(key.Name, func(r rune) bool { return r == '_' })
	if key.ID == "" {
		key.ID = Compact(segments)
		if ns.PluginID != "" {
			key.ID = ns.PluginID + ":" + key.ID
		}
	}
	if key.Query == "" {
		key.Query = strings.Join(Words(segments), "")
	}
	if key.DisplayName == "" {
		key.DisplayName = strings.Join(Words(segments), " ")
	}
	key.Reference = ns.KeyClass + "." + key.Name

	return model.KeyedField{TypedField: f, Key: key}
}
