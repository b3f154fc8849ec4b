package optblock

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-optblock/ast"
	"github.com/KimNorgaard/go-optblock/internal/formatter"
	"github.com/KimNorgaard/go-optblock/token"
)

// Encoder writes option blocks to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the pairs of r as an option block. Parsing the output
// yields the same pairs. Comments are not written.
func (e *Encoder) Encode(r *Result) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	return formatter.New(e.w, o.indent).Format(r.document())
}

// Marshal returns the option block encoding of r.
func Marshal(r *Result, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Result) document() *ast.Document {
	doc := &ast.Document{Pairs: make([]*ast.Pair, len(r.Pairs))}
	for i, p := range r.Pairs {
		doc.Pairs[i] = &ast.Pair{
			Key:   &ast.Scalar{Token: token.Token{Type: token.KEY, Literal: p.Key}, Value: p.Key},
			Value: &ast.Scalar{Token: token.Token{Type: token.VALUE, Literal: p.Value}, Value: p.Value},
		}
	}
	return doc
}
