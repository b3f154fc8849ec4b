package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-optblock/errors"
	"github.com/KimNorgaard/go-optblock/token"
)

// scanQuoted decodes a quoted scalar. s is the text following the opening
// quote, which sits at line and col. The scalar may span several lines; the
// cursor is left on the line holding the closing quote, and the text after
// that quote is returned.
//
// Line breaks inside the quotes fold into a single space, and every blank
// line in between becomes a newline. In double-quoted scalars a backslash
// at the end of a line joins the lines without a space.
func (l *Lexer) scanQuoted(style token.Style, s string, line, col int) (string, string, error) {
	double := style == token.DOUBLE_QUOTED
	quote := byte('\'')
	if double {
		quote = '"'
	}

	var b strings.Builder
	first, joined := true, false
	breaks := 0
	for {
		if !first {
			s = strings.TrimLeft(s, " \t")
		}
		end := findQuote(s, quote, double)
		raw := s
		if end >= 0 {
			raw = s[:end]
		}

		escapedBreak := false
		if end < 0 {
			if double && trailingBackslashes(raw)%2 == 1 {
				raw, escapedBreak = raw[:len(raw)-1], true
			} else {
				raw = strings.TrimRight(raw, " \t")
			}
		}

		switch {
		case first:
		case raw == "" && end < 0 && !escapedBreak:
			breaks++
			l.pos++
			if l.atEnd() {
				return "", "", errors.New(errors.MalformedQuote, line, col, "unterminated quoted scalar")
			}
			s = l.peek().Text
			continue
		case joined:
			b.WriteString(strings.Repeat("\n", breaks))
		case breaks > 0:
			b.WriteString(strings.Repeat("\n", breaks))
		default:
			b.WriteByte(' ')
		}

		if double {
			raw = unescape(raw)
		}
		b.WriteString(raw)
		if end >= 0 {
			return b.String(), s[end+1:], nil
		}

		first, joined, breaks = false, escapedBreak, 0
		l.pos++
		if l.atEnd() {
			return "", "", errors.New(errors.MalformedQuote, line, col, "unterminated quoted scalar")
		}
		s = l.peek().Text
	}
}

// findQuote returns the index of the first unescaped quote in s, or -1.
func findQuote(s string, quote byte, escapes bool) int {
	for i := 0; i < len(s); i++ {
		switch {
		case escapes && s[i] == '\\':
			i++
		case s[i] == quote:
			return i
		}
	}
	return -1
}

func trailingBackslashes(s string) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '\\' {
		n++
	}
	return n
}
