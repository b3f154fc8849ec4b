package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-optblock/errors"
	"github.com/KimNorgaard/go-optblock/token"
)

// blockHeader holds the indicators following a '|' or '>' marker.
type blockHeader struct {
	style     token.Style
	increment int // explicit indentation indicator, 0 when absent
	chomping  token.Chomping
}

// scanBlockHeader reads the header s, which starts at the style marker.
// line and col locate the marker for error reporting.
func (l *Lexer) scanBlockHeader(style token.Style, s string, line, col int) (blockHeader, error) {
	h := blockHeader{style: style}
	seenDigit, seenChomping := false, false
	i := 1
scan:
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c) && !seenDigit:
			if c == '0' {
				return h, errors.New(errors.InvalidIndentation, line, col+i,
					"found an indentation indicator equal to 0")
			}
			h.increment = int(c - '0')
			seenDigit = true
		case (c == '-' || c == '+') && !seenChomping:
			h.chomping, _ = token.LookupChomping(c)
			seenChomping = true
		default:
			break scan
		}
	}

	rest := l.stripComment(s[i:])
	if strings.TrimSpace(rest) != "" {
		return h, errors.New(errors.InvalidBlockHeader, line, col+i,
			"unexpected %q after block scalar indicator", strings.TrimSpace(rest))
	}
	return h, nil
}

// scanBlockScalar consumes the lines of a block scalar belonging to a key
// at column keyIndent. The cursor must sit on the line after the header.
func (l *Lexer) scanBlockScalar(h blockHeader, keyIndent, line, col int) (string, error) {
	indent := keyIndent + h.increment
	if h.increment == 0 {
		indent = l.detectIndent(keyIndent)
	}

	start := l.pos
	for !l.atEnd() {
		ln := l.peek()
		if !ln.Blank && (ln.Indent <= keyIndent || (ln.Indent < indent && ln.IsComment())) {
			break
		}
		l.pos++
	}
	block := l.lines[start:l.pos]
	if len(block) == 0 && h.increment > 0 {
		return "", errors.New(errors.InvalidIndentation, line, col,
			"no content for block scalar with indentation indicator %d", h.increment)
	}

	content := make([]string, len(block))
	last := -1
	for i, ln := range block {
		if ln.Blank {
			continue
		}
		// Lines indented less than the content column keep nothing of
		// their indentation.
		content[i] = strings.Repeat(" ", max(ln.Indent-indent, 0)) + ln.Text
		last = i
	}

	var body string
	if last >= 0 {
		switch h.style {
		case token.LITERAL:
			body = strings.Join(content[:last+1], "\n")
		case token.FOLDED:
			body = fold(content[:last+1])
		}
	}
	return chomp(body, block, last, h.chomping), nil
}

// detectIndent returns the indentation of the first non-blank line ahead
// of the cursor that belongs to a block at keyIndent.
func (l *Lexer) detectIndent(keyIndent int) int {
	for _, ln := range l.lines[l.pos:] {
		if ln.Blank {
			continue
		}
		if ln.Indent > keyIndent {
			return ln.Indent
		}
		break
	}
	return keyIndent + 1
}

// fold joins the lines of a folded scalar. Adjacent lines at the content
// column are joined with a space; blank lines and more-indented lines keep
// their line breaks.
func fold(lines []string) string {
	var b strings.Builder
	blanks := 0
	started, prevMore := false, false
	for _, s := range lines {
		if s == "" {
			blanks++
			continue
		}
		more := s[0] == ' ' || s[0] == '\t'
		switch {
		case !started:
			b.WriteString(strings.Repeat("\n", blanks))
		case more || prevMore:
			b.WriteString(strings.Repeat("\n", blanks+1))
		case blanks > 0:
			b.WriteString(strings.Repeat("\n", blanks))
		default:
			b.WriteByte(' ')
		}
		b.WriteString(s)
		started, prevMore, blanks = true, more, 0
	}
	return b.String()
}

// chomp applies the chomping policy to body. last indexes the final
// non-blank line of block, or is -1 when the block has no content.
func chomp(body string, block []Line, last int, c token.Chomping) string {
	if c == token.STRIP {
		return body
	}
	var b strings.Builder
	b.WriteString(body)
	if last >= 0 && block[last].Break {
		b.WriteByte('\n')
	}
	if c == token.KEEP {
		for _, ln := range block[last+1:] {
			if ln.Break {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
