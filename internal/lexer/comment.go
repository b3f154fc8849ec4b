package lexer

import "strings"

// stripComment truncates s at its first '#' and records that a comment
// was discarded. s must not contain an open quoted region.
func (l *Lexer) stripComment(s string) string {
	i := strings.IndexByte(s, '#')
	if i < 0 {
		return s
	}
	l.comments = true
	return s[:i]
}

// skipComment consumes a comment-only line.
func (l *Lexer) skipComment() {
	l.comments = true
	l.pos++
}
