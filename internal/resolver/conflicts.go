package resolver

import (
	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/model"
)

// checkConflicts rejects fields that would generate overlapping members:
// names that capitalise to the same accessor, equal key identifiers or
// equal stable ids.
func checkConflicts(fields []model.ResolvedField) error {
	names := make(map[string]string, len(fields))
	idents := make(map[string]string, len(fields))
	ids := make(map[string]string, len(fields))

	for _, f := range fields {
		if prev, ok := names[f.Capitalized()]; ok {
			return conflict("fields %q and %q generate the same accessors", prev, f.Name)
		}
		names[f.Capitalized()] = f.Name

		if prev, ok := idents[f.Key.Name]; ok {
			return conflict("fields %q and %q share key name %s", prev, f.Name, f.Key.Name)
		}
		idents[f.Key.Name] = f.Name

		if prev, ok := ids[f.Key.ID]; ok {
			return conflict("fields %q and %q share key id %q", prev, f.Name, f.Key.ID)
		}
		ids[f.Key.ID] = f.Name
	}
	return nil
}

func conflict(format string, args ...any) error {
	err := errors.Mark(errors.Newf(format, args...), errors.ErrFieldConflict)
	return errors.WithHint(err, "rename one field or set key.name / key.id explicitly")
}
