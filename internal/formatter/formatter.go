package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-optblock/ast"
)

const (
	defaultIndent = 2
)

// Formatter writes a Document back out as an option block that parses to
// the same pairs.
type Formatter struct {
	w      io.Writer
	indent string
}

// New returns a new formatter that writes to w, indenting block scalar
// content by indentSpaces (2 when nil).
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	return &Formatter{w: w, indent: strings.Repeat(" ", spaces)}
}

// Format writes every pair of doc on its own line.
func (f *Formatter) Format(doc *ast.Document) error {
	for _, p := range doc.Pairs {
		if err := f.writePair(p.Key.Value, p.Value.Value); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writePair(key, value string) error {
	var b strings.Builder
	if isPlainKey(key) {
		b.WriteString(key)
	} else {
		b.WriteString(quote(key))
	}
	b.WriteByte(':')

	switch {
	case value == "":
	case isPlainValue(value):
		b.WriteByte(' ')
		b.WriteString(value)
	case isBlockValue(value):
		b.WriteByte(' ')
		f.writeLiteral(&b, value)
	default:
		b.WriteByte(' ')
		b.WriteString(quote(value))
	}
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(f.w, b.String())
	return err
}

// writeLiteral writes value as a literal block scalar, picking the
// chomping indicator that reproduces its trailing newlines.
func (f *Formatter) writeLiteral(b *strings.Builder, value string) {
	body := strings.TrimRight(value, "\n")
	trailing := len(value) - len(body)

	b.WriteByte('|')
	if strings.HasPrefix(strings.TrimLeft(body, "\n"), " ") {
		fmt.Fprintf(b, "%d", len(f.indent))
	}
	switch {
	case trailing == 0:
		b.WriteByte('-')
	case trailing > 1:
		b.WriteByte('+')
	}
	b.WriteByte('\n')

	for _, line := range strings.Split(body, "\n") {
		if line != "" {
			b.WriteString(f.indent)
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	if trailing > 1 {
		b.WriteString(strings.Repeat("\n", trailing-1))
	}
}

func isPlainKey(s string) bool {
	return isPlainValue(s) && !strings.ContainsRune(s, ':')
}

func isPlainValue(s string) bool {
	if s == "" || strings.TrimSpace(s) != s || hasControl(s, false) {
		return false
	}
	if strings.ContainsRune(s, '#') {
		return false
	}
	switch s[0] {
	case '"', '\'', '|', '>':
		return false
	}
	return true
}

// isBlockValue reports whether value survives a literal block scalar.
// Whitespace-only lines would be read back as empty lines.
func isBlockValue(s string) bool {
	body := strings.TrimRight(s, "\n")
	if !strings.ContainsRune(s, '\n') || body == "" || hasControl(s, true) {
		return false
	}
	for _, line := range strings.Split(body, "\n") {
		if line != "" && strings.TrimSpace(line) == "" {
			return false
		}
	}
	return true
}

func hasControl(s string, allowNewline bool) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' && allowNewline {
			continue
		}
		if c == '\t' {
			continue
		}
		if c < 0x20 || c == 0x7f {
			return true
		}
	}
	return false
}

// quote returns s as a double-quoted scalar.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
