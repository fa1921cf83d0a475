package resolver

import (
	"path/filepath"
	"strings"
	"unicode"
)

// keyClassSuffixes are stripped from a class name, longest first, before
// "Keys" is appended.
var keyClassSuffixes = []string{"DataManipulator", "Manipulator", "Data"}

// ClassName derives a class name from an input path: the base name
// without extension, keeping letters, digits and underscores.
func ClassName(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Map(func(r rune) rune {
		if isIdentPart(r) {
			return r
		}
		return -1
	}, base)
}

// KeyClassName derives the key registry name from a class name.
func KeyClassName(class string) string {
	for _, suffix := range keyClassSuffixes {
		if stem, ok := strings.CutSuffix(class, suffix); ok && stem != "" {
			return stem + "Keys"
		}
	}
	return class + "Keys"
}

// IsIdentifier reports whether s is a valid, non-reserved identifier.
func IsIdentifier(s string) bool {
	if s == "" || reserved[s] {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

// IsQualifiedName reports whether s is a dot-separated list of identifiers.
func IsQualifiedName(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if !IsIdentifier(part) {
			return false
		}
	}
	return true
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

var reserved = func() map[string]bool {
	words := strings.Fields(`abstract assert boolean break byte case catch char class const
		continue default do double else enum extends final finally float for goto if
		implements import instanceof int interface long native new package private
		protected public return short static strictfp super switch synchronized this
		throw throws transient try void volatile while true false null var _`)
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()
