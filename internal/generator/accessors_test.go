package generator

import (
	"testing"

	"github.com/seitarof/gen-manipulator/internal/model"
	"github.com/seitarof/gen-manipulator/internal/resolver"
	"github.com/seitarof/gen-manipulator/internal/spec"
)

func resolveField(t *testing.T, f spec.Field) model.ResolvedField {
	t.Helper()
	m, err := resolver.New().Resolve(&spec.Manipulator{Class: "SampleData", Fields: []spec.Field{f}}, "SampleData.yaml")
	if err != nil {
		t.Fatalf("Resolve(%+v) error = %v", f, err)
	}
	return m.Fields[0]
}

func TestAccessors_Read(t *testing.T) {
	const q = "SampleKeys.VALUES.getQuery()"
	tests := []struct {
		name  string
		field spec.Field
		want  string
	}{
		{
			name:  "boxed list element",
			field: spec.Field{Type: "java.util.List<Integer>"},
			want:  "container.getIntegerList(" + q + ").ifPresent(v -> values = v);",
		},
		{
			name:  "qualified set element",
			field: spec.Field{Type: "java.util.Set<java.lang.Long>"},
			want:  "container.getLongList(" + q + ").map(HashSet::new).ifPresent(v -> values = v);",
		},
		{
			name:  "list element fallback",
			field: spec.Field{Type: "java.util.List<com.example.Foo<Bar>>"},
			want:  "container.getObjectList(" + q + ", Foo.class).ifPresent(v -> values = v);",
		},
		{
			name:  "set element fallback",
			field: spec.Field{Type: "java.util.Set<java.util.UUID>"},
			want:  "container.getObjectList(" + q + ", UUID.class).map(HashSet::new).ifPresent(v -> values = v);",
		},
		{
			name:  "raw list",
			field: spec.Field{Type: "java.util.List"},
			want:  "container.getObjectList(" + q + ", Object.class).ifPresent(v -> values = v);",
		},
		{
			name:  "char cast",
			field: spec.Field{Type: "C"},
			want:  "container.getInt(" + q + ").map(i -> (char) i.intValue()).ifPresent(v -> values = v);",
		},
		{
			name:  "primitive",
			field: spec.Field{Type: "D"},
			want:  "container.getDouble(" + q + ").ifPresent(v -> values = v);",
		},
		{
			name:  "qualified boxed scalar",
			field: spec.Field{Type: "java.lang.Integer"},
			want:  "container.getInt(" + q + ").ifPresent(v -> values = v);",
		},
		{
			name:  "scalar fallback",
			field: spec.Field{Type: "java.util.UUID"},
			want:  "container.getObject(" + q + ", UUID.class).ifPresent(v -> values = v);",
		},
		{
			name:  "optional primitive",
			field: spec.Field{Type: "I", Optional: true},
			want:  "container.getInt(" + q + ").ifPresent(v -> values = v);",
		},
		{
			name:  "array is read as an object",
			field: spec.Field{Type: "java.lang.String[]"},
			want:  "container.getObject(" + q + ", String[].class).ifPresent(v -> values = v);",
		},
		{
			name:  "map",
			field: spec.Field{Type: "java.util.Map<String, Integer>"},
			want:  "container.getMap(" + q + ").ifPresent(v -> values = (Map<String, Integer>) v); // TODO: unchecked map read",
		},
	}

	acc := DefaultAccessors()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.field.Name = "values"
			if got := acc.Read(resolveField(t, tt.field)); got != tt.want {
				t.Fatalf("Read() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRender_WithAccessors(t *testing.T) {
	custom := &Accessors{
		Scalar: []Accessor{
			{Match: "java.util.UUID", Method: "getString", Suffix: ".map(UUID::fromString)"},
		},
	}
	_, holder := renderHome(t, WithAccessors(custom))

	mustContain(t, "holder", holder,
		"container.getString(HomeKeys.OWNER.getQuery()).map(UUID::fromString).ifPresent(v -> owner = v);",
		"container.getObjectList(HomeKeys.HOMES.getQuery(), String.class).ifPresent(v -> homes = v);",
		"container.getObject(HomeKeys.OPEN_INVENTORY.getQuery(), Boolean.class).ifPresent(v -> openInventory = v);",
	)
}
