package generator

import (
	"strings"

	"github.com/seitarof/gen-manipulator/internal/errors"
)

// LineEnding is the newline sequence written to generated files.
type LineEnding string

const (
	LF   LineEnding = "\n"
	CRLF LineEnding = "\r\n"
)

// ParseLineEnding accepts "lf" or "crlf".
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	default:
		return "", errors.WithHint(errors.Newf("unknown line ending %q", s), "use lf or crlf")
	}
}

type javaFormatter struct {
	eol LineEnding
}

// NewJavaFormatter creates a formatter normalising whitespace in Java
// source and rejecting unbalanced braces.
func NewJavaFormatter(eol LineEnding) Formatter {
	if eol == "" {
		eol = LF
	}
	return &javaFormatter{eol: eol}
}

func (f *javaFormatter) Format(filename string, src []byte) ([]byte, error) {
	if err := checkBraces(src); err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}

	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if len(out) == 0 || out[len(out)-1] == "" || strings.HasSuffix(out[len(out)-1], "{") {
				continue
			}
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "}") && len(out) > 0 && out[len(out)-1] == "" {
			out = out[:len(out)-1]
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	eol := string(f.eol)
	return []byte(strings.Join(out, eol) + eol), nil
}

// checkBraces verifies that braces outside literals and comments balance.
func checkBraces(src []byte) error {
	depth, line := 0, 1
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\n':
			line++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			line++
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
				if src[i] == '\n' {
					line++
				}
				i++
			}
			i++
		case c == '"' || c == '\'':
			for i++; i < len(src) && src[i] != c && src[i] != '\n'; i++ {
				if src[i] == '\\' {
					i++
				}
			}
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth < 0 {
				return errors.Newf("line %d: unexpected }", line)
			}
		}
	}
	if depth != 0 {
		return errors.Newf("%d unclosed {", depth)
	}
	return nil
}
