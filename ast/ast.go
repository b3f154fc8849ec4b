package ast

import (
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-optblock/token"
)

// Document is the root node of a parsed option block.
type Document struct {
	Pairs []*Pair
	// Comments is set when at least one comment was discarded.
	Comments bool
}

// String returns one "key: value" line per pair with both sides quoted,
// followed by a comments marker when comments were found.
func (d *Document) String() string {
	var out strings.Builder
	for _, p := range d.Pairs {
		out.WriteString(p.String())
		out.WriteByte('\n')
	}
	if d.Comments {
		out.WriteString("# comments\n")
	}
	return out.String()
}

// Pair is a key and its value in order of appearance.
type Pair struct {
	Key   *Scalar
	Value *Scalar
}

func (p *Pair) String() string {
	return p.Key.String() + ": " + p.Value.String()
}

// Scalar is a decoded key or value together with where it was found.
type Scalar struct {
	Token token.Token
	Value string
}

// Style returns the style the scalar was written in.
func (s *Scalar) Style() token.Style { return s.Token.Style }

func (s *Scalar) String() string { return strconv.Quote(s.Value) }
