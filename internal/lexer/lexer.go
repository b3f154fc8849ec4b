package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-optblock/errors"
	"github.com/KimNorgaard/go-optblock/token"
)

// Lexer turns an option block into alternating KEY and VALUE tokens.
type Lexer struct {
	lines    []Line
	pos      int // index of the current line
	column   int // indentation of the key column, -1 before the first key
	comments bool
	pending  *token.Token
}

// New creates and returns a new Lexer.
func New(src string) *Lexer {
	return &Lexer{
		lines:  Split(src),
		column: -1,
	}
}

// Comments reports whether any comment has been discarded so far.
func (l *Lexer) Comments() bool {
	return l.comments
}

// NextToken scans the input and returns the next token. Every KEY token is
// followed by exactly one VALUE token.
func (l *Lexer) NextToken() (token.Token, error) {
	if l.pending != nil {
		tok := *l.pending
		l.pending = nil
		return tok, nil
	}

	l.skipEmpty()
	if l.atEnd() {
		return token.Token{Type: token.EOF, Line: len(l.lines) + 1, Column: 1}, nil
	}

	key, rest, err := l.scanKey()
	if err != nil {
		return token.Token{}, err
	}
	value, err := l.scanValue(rest, key.Column-1)
	if err != nil {
		return token.Token{}, err
	}
	l.pending = &value
	return key, nil
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.lines)
}

func (l *Lexer) peek() Line {
	return l.lines[l.pos]
}

// skipEmpty advances past blank and comment-only lines.
func (l *Lexer) skipEmpty() {
	for !l.atEnd() {
		ln := l.peek()
		switch {
		case ln.Blank:
			l.pos++
		case ln.IsComment():
			l.skipComment()
		default:
			return
		}
	}
}

// scanKey reads the key on the current line and returns it along with the
// text following its ':'. The cursor is left on the line holding the ':'.
func (l *Lexer) scanKey() (token.Token, string, error) {
	ln := l.peek()
	if l.column < 0 {
		l.column = ln.Indent
	}
	if ln.Indent != l.column {
		return token.Token{}, "", errors.New(errors.InvalidIndentation, ln.Num, ln.Indent+1,
			"key indented to column %d, expected column %d", ln.Indent+1, l.column+1)
	}

	tok := token.Token{Type: token.KEY, Style: token.PLAIN, Line: ln.Num, Column: ln.Indent + 1}
	if style, ok := token.LookupQuote(ln.Text[0]); ok {
		lit, rest, err := l.scanQuoted(style, ln.Text[1:], ln.Num, ln.Indent+1)
		if err != nil {
			return tok, "", err
		}
		rest = strings.TrimLeft(rest, " \t")
		if !strings.HasPrefix(rest, ":") {
			cur := l.peek()
			return tok, "", errors.New(errors.MissingColon, cur.Num, l.columnOf(rest),
				"expected ':' after key %q", lit)
		}
		tok.Style, tok.Literal = style, lit
		return tok, rest[1:], nil
	}

	lit, rest, err := l.scanPlainKey()
	if err != nil {
		return tok, "", err
	}
	tok.Literal = lit
	return tok, rest, nil
}

// scanPlainKey collects key fragments up to the first ':'. A key may
// continue on following lines indented deeper than the key column.
func (l *Lexer) scanPlainKey() (string, string, error) {
	first := l.peek()
	var parts []string
	for {
		text := l.peek().Text
		seg := text
		// Only a '#' before the ':' is a comment here; the value decides
		// about the rest of the line.
		if i := strings.IndexAny(text, ":#"); i >= 0 {
			if text[i] == ':' {
				if s := strings.TrimSpace(text[:i]); s != "" || len(parts) == 0 {
					parts = append(parts, s)
				}
				return strings.Join(parts, " "), text[i+1:], nil
			}
			seg = l.stripComment(text)
		}
		if s := strings.TrimSpace(seg); s != "" {
			parts = append(parts, s)
		}

		l.pos++
		l.skipEmpty()
		if l.atEnd() || l.peek().Indent <= l.column {
			return "", "", errors.New(errors.MissingColon, first.Num, first.Indent+1,
				"expected ':' after key %q", strings.Join(parts, " "))
		}
	}
}

// scanValue reads the value whose inline part is rest, for a key at column
// keyIndent. The cursor is left on the first line after the value.
func (l *Lexer) scanValue(rest string, keyIndent int) (token.Token, error) {
	ln := l.peek()
	inline := strings.TrimLeft(rest, " \t")
	tok := token.Token{Type: token.VALUE, Style: token.PLAIN, Line: ln.Num, Column: l.columnOf(inline)}

	if inline != "" {
		if style, ok := token.LookupBlock(inline[0]); ok {
			h, err := l.scanBlockHeader(style, inline, tok.Line, tok.Column)
			if err != nil {
				return tok, err
			}
			l.pos++
			lit, err := l.scanBlockScalar(h, keyIndent, tok.Line, tok.Column)
			if err != nil {
				return tok, err
			}
			tok.Style, tok.Literal = style, lit
			return tok, nil
		}
		if style, ok := token.LookupQuote(inline[0]); ok {
			lit, after, err := l.scanQuoted(style, inline[1:], tok.Line, tok.Column)
			if err != nil {
				return tok, err
			}
			if s := strings.TrimSpace(l.stripComment(after)); s != "" {
				cur := l.peek()
				return tok, errors.New(errors.UnexpectedContent, cur.Num, l.columnOf(strings.TrimLeft(after, " \t")),
					"unexpected %q after quoted scalar", s)
			}
			l.pos++
			tok.Style, tok.Literal = style, lit
			return tok, nil
		}
	}

	tok.Literal = l.scanPlain(inline, keyIndent)
	return tok, nil
}

// scanPlain joins the inline text with the continuation lines that follow
// it, separated by single spaces.
func (l *Lexer) scanPlain(inline string, keyIndent int) string {
	var parts []string
	if s := strings.TrimSpace(l.stripComment(inline)); s != "" {
		parts = append(parts, s)
	}
	l.pos++
	for !l.atEnd() {
		ln := l.peek()
		switch {
		case ln.Blank:
			l.pos++
		case ln.IsComment():
			l.skipComment()
		case ln.Indent <= keyIndent:
			return strings.Join(parts, " ")
		default:
			if s := strings.TrimSpace(l.stripComment(ln.Text)); s != "" {
				parts = append(parts, s)
			}
			l.pos++
		}
	}
	return strings.Join(parts, " ")
}

// columnOf returns the 1-based column at which the suffix s of the current
// line starts.
func (l *Lexer) columnOf(s string) int {
	ln := l.peek()
	return ln.Indent + len(ln.Text) - len(s) + 1
}
