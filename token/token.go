package token

// Type is the type of a token.
type Type string

// Style is the presentation style a scalar was written in.
type Style string

// Chomping controls the trailing line breaks of a block scalar.
type Chomping int

// Token represents a decoded key or value.
type Token struct {
	Type    Type
	Style   Style
	Literal string
	Line    int
	Column  int
}

const (
	EOF   Type = "EOF"
	KEY   Type = "KEY"
	VALUE Type = "VALUE"
)

const (
	PLAIN         Style = "PLAIN"
	SINGLE_QUOTED Style = "SINGLE_QUOTED" //nolint:revive
	DOUBLE_QUOTED Style = "DOUBLE_QUOTED" //nolint:revive
	LITERAL       Style = "LITERAL"
	FOLDED        Style = "FOLDED"
)

const (
	CLIP Chomping = iota
	STRIP
	KEEP
)

var blockStyles = map[byte]Style{
	'|': LITERAL,
	'>': FOLDED,
}

var quoteStyles = map[byte]Style{
	'\'': SINGLE_QUOTED,
	'"':  DOUBLE_QUOTED,
}

// LookupBlock returns the block style introduced by the marker c.
func LookupBlock(c byte) (Style, bool) {
	s, ok := blockStyles[c]
	return s, ok
}

// LookupQuote returns the quoted style opened by the quote character c.
func LookupQuote(c byte) (Style, bool) {
	s, ok := quoteStyles[c]
	return s, ok
}

// LookupChomping returns the chomping indicated by c.
func LookupChomping(c byte) (Chomping, bool) {
	switch c {
	case '-':
		return STRIP, true
	case '+':
		return KEEP, true
	}
	return CLIP, false
}

func (c Chomping) String() string {
	switch c {
	case STRIP:
		return "strip"
	case KEEP:
		return "keep"
	}
	return "clip"
}
