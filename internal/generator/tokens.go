package generator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var nonWord = regexp.MustCompile(`\W`)

// typeToken is one TypeToken declaration in the key registry.
type typeToken struct {
	Type string
	Name string
}

// Init is the initialiser of the token variable.
func (t typeToken) Init() string {
	if strings.Contains(t.Type, "<") {
		return "new TypeToken<" + t.Type + ">(){}"
	}
	return "TypeToken.of(" + t.Type + ".class)"
}

// tokenSet names TypeToken variables, one per distinct type, in
// first-use order.
type tokenSet struct {
	byType map[string]string
	used   map[string]bool
	list   []typeToken
}

func newTokenSet() *tokenSet {
	return &tokenSet{byType: map[string]string{}, used: map[string]bool{}}
}

// name returns the variable for typ, declaring it on first use.
func (s *tokenSet) name(typ string) string {
	if n, ok := s.byType[typ]; ok {
		return n
	}
	base := tokenBase(typ)
	n := base + "Token"
	for i := 2; s.used[n]; i++ {
		n = base + strconv.Itoa(i) + "Token"
	}
	s.used[n] = true
	s.byType[typ] = n
	s.list = append(s.list, typeToken{Type: typ, Name: n})
	return n
}

// tokenBase lower-cases the first letter of typ and drops non-word
// characters: "Optional<UUID>" becomes "optionalUUID", "UUID" becomes "uuid".
func tokenBase(typ string) string {
	r, size := utf8.DecodeRuneInString(typ)
	if r == utf8.RuneError {
		return "type"
	}
	s := string(unicode.ToLower(r)) + typ[size:]
	s = strings.ReplaceAll(s, "uUID", "uuid")
	return nonWord.ReplaceAllString(s, "")
}
