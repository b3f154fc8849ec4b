package lexer

import "strings"

// Line is a physical line of an option block.
type Line struct {
	Num    int    // 1-based line number
	Indent int    // count of leading space characters
	Text   string // content after the indentation
	Blank  bool   // only whitespace
	Break  bool   // terminated by a newline
}

// IsComment reports whether the line holds nothing but a comment.
func (ln Line) IsComment() bool {
	return strings.HasPrefix(strings.TrimLeft(ln.Text, " \t"), "#")
}

// Split splits src into lines. A trailing carriage return is dropped from
// every line, and the empty remainder after a final newline is not a line.
func Split(src string) []Line {
	if src == "" {
		return nil
	}
	raw := strings.Split(src, "\n")
	terminated := strings.HasSuffix(src, "\n")
	if terminated {
		raw = raw[:len(raw)-1]
	}

	lines := make([]Line, len(raw))
	for i, s := range raw {
		s = strings.TrimSuffix(s, "\r")
		indent := countIndent(s)
		lines[i] = Line{
			Num:    i + 1,
			Indent: indent,
			Text:   s[indent:],
			Blank:  strings.TrimSpace(s) == "",
			Break:  terminated || i < len(raw)-1,
		}
	}
	return lines
}

func countIndent(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}
