package typeres

import (
	"testing"

	"github.com/seitarof/gen-manipulator/internal/errors"
	"github.com/seitarof/gen-manipulator/internal/model"
	"github.com/seitarof/gen-manipulator/internal/spec"
)

func TestResolve_PrimitiveCodesAreStable(t *testing.T) {
	r := New(nil)
	for code, want := range DefaultPrimitives() {
		first, err := r.Resolve(spec.Field{Name: "v", Type: code})
		if err != nil {
			t.Fatalf("%s: Resolve() error = %v", code, err)
		}
		second, err := r.Resolve(spec.Field{Name: "v", Type: code})
		if err != nil {
			t.Fatalf("%s: Resolve() error = %v", code, err)
		}
		if first.FullType != second.FullType || first.BoxedType != second.BoxedType {
			t.Fatalf("%s: unstable resolution %s/%s vs %s/%s", code, first.FullType, first.BoxedType, second.FullType, second.BoxedType)
		}
		if first.FullType != want.Full || first.BoxedType != want.Boxed {
			t.Fatalf("%s: got %s/%s, want %s/%s", code, first.FullType, first.BoxedType, want.Full, want.Boxed)
		}
		if first.Kind != model.KindScalar || !first.Primitive {
			t.Fatalf("%s: kind = %s primitive = %v", code, first.Kind, first.Primitive)
		}
	}
}

func TestResolve_PrimitiveSpellingIsCanonicalised(t *testing.T) {
	tf, err := New(nil).Resolve(spec.Field{Name: "enabled", Type: "boolean"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if tf.Code != "Z" || tf.BoxedType != "Boolean" || tf.Getter() != "isEnabled" {
		t.Fatalf("unexpected resolution: %+v", tf)
	}
}

func TestResolve_QualifiedTypes(t *testing.T) {
	tests := []struct {
		name        string
		field       spec.Field
		wantFull    string
		wantBoxed   string
		wantKind    model.Kind
		wantHead    string
		wantInner   string
		wantInnerHd string
		wantImports int
	}{
		{
			name:      "uuid",
			field:     spec.Field{Name: "owner", Type: "java.util.UUID"},
			wantFull:  "UUID",
			wantBoxed: "UUID",
			wantKind:  model.KindScalar,
			wantHead:  "java.util.UUID", wantImports: 1,
		},
		{
			name:        "raw list",
			field:       spec.Field{Name: "items", Type: "java.util.List"},
			wantFull:    "List",
			wantBoxed:   "List",
			wantKind:    model.KindList,
			wantHead:    "java.util.List",
			wantInnerHd: "Object", wantImports: 1,
		},
		{
			name:        "list with explicit full type",
			field:       spec.Field{Name: "names", Type: "java.util.List", FullType: "List<String>"},
			wantFull:    "List<String>",
			wantBoxed:   "List<String>",
			wantKind:    model.KindList,
			wantHead:    "java.util.List",
			wantInner:   "String",
			wantInnerHd: "String", wantImports: 1,
		},
		{
			name:        "generic set in type code",
			field:       spec.Field{Name: "ids", Type: "java.util.Set<java.util.UUID>"},
			wantFull:    "Set<UUID>",
			wantBoxed:   "Set<UUID>",
			wantKind:    model.KindSet,
			wantHead:    "java.util.Set",
			wantInner:   "UUID",
			wantInnerHd: "UUID", wantImports: 2,
		},
		{
			name:      "map",
			field:     spec.Field{Name: "scores", Type: "java.util.Map", FullType: "Map<String, Integer>"},
			wantFull:  "Map<String, Integer>",
			wantBoxed: "Map<String, Integer>",
			wantKind:  model.KindMap,
			wantHead:  "java.util.Map", wantImports: 1,
		},
		{
			name:      "optional list is optional",
			field:     spec.Field{Name: "maybe", Type: "java.util.List", FullType: "List<String>", Optional: true},
			wantFull:  "List<String>",
			wantBoxed: "List<String>",
			wantKind:  model.KindOptional,
			wantHead:  "java.util.List", wantImports: 1,
		},
		{
			name:      "optional primitive",
			field:     spec.Field{Name: "level", Type: "I", Optional: true},
			wantFull:  "int",
			wantBoxed: "Integer",
			wantKind:  model.KindOptional,
			wantHead:  "I",
		},
		{
			name:      "array keeps its dimensions",
			field:     spec.Field{Name: "names", Type: "java.lang.String[]"},
			wantFull:  "String[]",
			wantBoxed: "String[]",
			wantKind:  model.KindScalar,
			wantHead:  "java.lang.String[]",
		},
		{
			name:      "array of lists is not a list",
			field:     spec.Field{Name: "pages", Type: "java.util.List<String>[][]"},
			wantFull:  "List<String>[][]",
			wantBoxed: "List<String>[][]",
			wantKind:  model.KindScalar,
			wantHead:  "java.util.List[][]", wantImports: 1,
		},
		{
			name:      "java.lang is not imported",
			field:     spec.Field{Name: "label", Type: "java.lang.String"},
			wantFull:  "String",
			wantBoxed: "String",
			wantKind:  model.KindScalar,
			wantHead:  "java.lang.String",
		},
	}

	r := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, err := r.Resolve(tt.field)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if tf.FullType != tt.wantFull || tf.BoxedType != tt.wantBoxed {
				t.Errorf("types = %s/%s, want %s/%s", tf.FullType, tf.BoxedType, tt.wantFull, tt.wantBoxed)
			}
			if tf.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", tf.Kind, tt.wantKind)
			}
			if tf.QualifiedHead != tt.wantHead {
				t.Errorf("QualifiedHead = %s, want %s", tf.QualifiedHead, tt.wantHead)
			}
			if tf.Inner != tt.wantInner || tf.InnerHead != tt.wantInnerHd {
				t.Errorf("inner = %q/%q, want %q/%q", tf.Inner, tf.InnerHead, tt.wantInner, tt.wantInnerHd)
			}
			if len(tf.TypeImports) != tt.wantImports {
				t.Errorf("imports = %v, want %d", tf.TypeImports, tt.wantImports)
			}
		})
	}
}

func TestResolve_DoesNotModifyInput(t *testing.T) {
	f := spec.Field{Name: "count", Type: "I"}
	if _, err := New(nil).Resolve(f); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if f.FullType != "" {
		t.Fatalf("input modified: %+v", f)
	}
}

func TestResolve_Errors(t *testing.T) {
	r := New(nil)
	for _, f := range []spec.Field{
		{Name: "missing"},
		{Name: "bad", Type: "java.util.List<String"},
		{Name: "badFull", Type: "java.util.List", FullType: "List<>"},
	} {
		_, err := r.Resolve(f)
		if err == nil {
			t.Fatalf("%s: expected error", f.Name)
		}
		if !errors.Is(err, errors.ErrInvalidSpec) {
			t.Fatalf("%s: error not marked invalid: %v", f.Name, err)
		}
	}
}

func TestResolve_CustomTable(t *testing.T) {
	table := DefaultPrimitives()
	table["Q"] = Primitive{Full: "long", Boxed: "Long"}

	tf, err := New(table).Resolve(spec.Field{Name: "big", Type: "Q"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if tf.FullType != "long" || tf.BoxedType != "Long" {
		t.Fatalf("custom code not used: %+v", tf)
	}
}
