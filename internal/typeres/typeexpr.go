package typeres

import (
	"fmt"
	"strings"
	"unicode"
)

// TypeExpr is a parsed type expression such as "java.util.Map<K, V>[]".
type TypeExpr struct {
	Name string
	Args []TypeExpr
	Dims int
}

// ParseType parses s. Whitespace between tokens is ignored; wildcard
// bounds ("? extends T") are not supported.
func ParseType(s string) (TypeExpr, error) {
	p := &typeParser{src: s}
	expr, err := p.parse()
	if err != nil {
		return TypeExpr{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return TypeExpr{}, fmt.Errorf("unexpected %q at offset %d in %q", p.src[p.pos:], p.pos, s)
	}
	return expr, nil
}

// String renders the expression with names as written.
func (t TypeExpr) String() string {
	return t.render(func(name string) string { return name })
}

// Simple renders the expression with package qualifiers removed from
// every name.
func (t TypeExpr) Simple() string {
	return t.render(SimpleName)
}

func (t TypeExpr) render(name func(string) string) string {
	var b strings.Builder
	b.WriteString(name(t.Name))
	if len(t.Args) > 0 {
		b.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.render(name))
		}
		b.WriteByte('>')
	}
	for i := 0; i < t.Dims; i++ {
		b.WriteString("[]")
	}
	return b.String()
}

// Imports returns the qualified names referenced by the expression in
// first-seen order. Names in java.lang are implicit and skipped.
func (t TypeExpr) Imports() []string {
	var out []string
	seen := map[string]bool{}
	var walk func(TypeExpr)
	walk = func(e TypeExpr) {
		if pkg, _, ok := splitQualified(e.Name); ok && pkg != "java.lang" && !seen[e.Name] {
			seen[e.Name] = true
			out = append(out, e.Name)
		}
		for _, a := range e.Args {
			walk(a)
		}
	}
	walk(t)
	return out
}

// SimpleName returns the last dotted segment of name.
func SimpleName(name string) string {
	if _, simple, ok := splitQualified(name); ok {
		return simple
	}
	return name
}

func splitQualified(name string) (pkg, simple string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", name, false
	}
	return name[:i], name[i+1:], true
}

// Head returns s up to its first generic argument list.
func Head(s string) string {
	if i := strings.IndexByte(s, '<'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) parse() (TypeExpr, error) {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		if p.pos >= len(p.src) {
			return TypeExpr{}, fmt.Errorf("missing type name in %q", p.src)
		}
		return TypeExpr{}, fmt.Errorf("unexpected %q at offset %d in %q", p.src[p.pos], p.pos, p.src)
	}
	expr := TypeExpr{Name: name}

	p.skipSpace()
	if p.peek() == '<' {
		p.pos++
		for {
			arg, err := p.parse()
			if err != nil {
				return TypeExpr{}, err
			}
			expr.Args = append(expr.Args, arg)
			p.skipSpace()
			switch p.peek() {
			case ',':
				p.pos++
				continue
			case '>':
				p.pos++
			default:
				return TypeExpr{}, fmt.Errorf("unterminated type arguments in %q", p.src)
			}
			break
		}
	}

	for {
		p.skipSpace()
		if !strings.HasPrefix(p.src[p.pos:], "[]") {
			break
		}
		p.pos += 2
		expr.Dims++
	}
	return expr, nil
}

func (p *typeParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		r := rune(p.src[p.pos])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' || r == '.' || r == '?' || r >= 0x80 {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *typeParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}
