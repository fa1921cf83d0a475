package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segments splits name at separators ('_', '-', '.', whitespace) and at
// lower-to-upper case transitions. Empty segments are dropped.
//
//	Segments("openInventory")   // [open Inventory]
//	Segments("OPEN_INVENTORY")  // [OPEN INVENTORY]
func Segments(name string) []string {
	var (
		out     []string
		current []rune
		prev    rune
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, string(current))
			current = current[:0]
		}
	}

	for _, r := range name {
		switch {
		case isSeparator(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
		prev = r
	}
	flush()
	return out
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// Identifier joins upper-cased segments with '_'.
func Identifier(segments []string) string {
	upper := make([]string, len(segments))
	for i, s := range segments {
		upper[i] = strings.ToUpper(s)
	}
	return strings.Join(upper, "_")
}

// Words keeps the first letter of each segment as written and lower-cases
// the rest.
func Words(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			continue
		}
		out = append(out, string(r)+strings.ToLower(s[size:]))
	}
	return out
}

// Compact lower-cases the segments and joins them without separators.
func Compact(segments []string) string {
	return strings.ToLower(strings.Join(segments, ""))
}
