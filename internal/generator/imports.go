package generator

import (
	"sort"

	"github.com/seitarof/gen-manipulator/internal/model"
)

var holderBaseImports = []string{
	"java.util.Optional",
	"javax.annotation.Generated",
	"org.spongepowered.api.Sponge",
	"org.spongepowered.api.data.DataContainer",
	"org.spongepowered.api.data.DataHolder",
	"org.spongepowered.api.data.DataView",
	"org.spongepowered.api.data.manipulator.DataManipulatorBuilder",
	"org.spongepowered.api.data.manipulator.immutable.common.AbstractImmutableData",
	"org.spongepowered.api.data.manipulator.mutable.common.AbstractData",
	"org.spongepowered.api.data.merge.MergeFunction",
	"org.spongepowered.api.data.persistence.AbstractDataBuilder",
	"org.spongepowered.api.data.persistence.InvalidDataException",
}

var keysBaseImports = []string{
	"com.google.common.reflect.TypeToken",
	"javax.annotation.Generated",
	"org.spongepowered.api.data.DataQuery",
	"org.spongepowered.api.data.key.Key",
	"org.spongepowered.api.data.key.KeyFactory",
}

type importSet map[string]struct{}

func (s importSet) add(names ...string) {
	for _, n := range names {
		if n != "" {
			s[n] = struct{}{}
		}
	}
}

func (s importSet) sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// holderImports lists every import the data holder needs, sorted.
func holderImports(m *model.Manipulator) []string {
	set := importSet{}
	set.add(holderBaseImports...)
	if m.HasOptional() {
		set.add("javax.annotation.Nullable")
	}
	for _, f := range m.Fields {
		fam := f.Family()
		set.add(f.TypeImports...)
		set.add(f.DefaultImports...)
		set.add(fam.MutableImport(), fam.ImmutableImport())
		if f.Kind == model.KindSet && !f.Transient {
			set.add("java.util.HashSet")
		}
	}
	set.add(m.Imports...)
	return set.sorted()
}

// keyImports lists every import the key registry needs, sorted.
func keyImports(m *model.Manipulator) []string {
	set := importSet{}
	set.add(keysBaseImports...)
	if m.HasOptional() {
		set.add("java.util.Optional")
	}
	for _, f := range m.Fields {
		set.add(f.TypeImports...)
		set.add(f.Family().MutableImport())
	}
	set.add(m.Imports...)
	return set.sorted()
}
