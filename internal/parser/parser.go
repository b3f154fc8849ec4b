package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-optblock/ast"
	"github.com/KimNorgaard/go-optblock/internal/lexer"
	"github.com/KimNorgaard/go-optblock/token"
)

// Parser assembles the token stream of a Lexer into a Document.
type Parser struct {
	l   *lexer.Lexer
	err error

	curToken  token.Token
	peekToken token.Token
}

// New creates a new parser.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// Parse consumes the whole input. It stops at the first error; no partial
// document is returned alongside it.
func (p *Parser) Parse() (*ast.Document, error) {
	document := &ast.Document{Pairs: []*ast.Pair{}}

	for p.err == nil && !p.curTokenIs(token.EOF) {
		pair, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		document.Pairs = append(document.Pairs, pair)
	}
	if p.err != nil {
		return nil, p.err
	}

	document.Comments = p.l.Comments()
	return document, nil
}

// parsePair is entered with curToken on a KEY and returns with curToken on
// the token after its VALUE.
func (p *Parser) parsePair() (*ast.Pair, error) {
	if !p.curTokenIs(token.KEY) {
		return nil, fmt.Errorf("optblock: expected key, got %s", p.curToken.Type)
	}
	if !p.peekTokenIs(token.VALUE) {
		return nil, fmt.Errorf("optblock: expected value after key %q, got %s", p.curToken.Literal, p.peekToken.Type)
	}
	pair := &ast.Pair{
		Key:   &ast.Scalar{Token: p.curToken, Value: p.curToken.Literal},
		Value: &ast.Scalar{Token: p.peekToken, Value: p.peekToken.Literal},
	}
	p.nextToken()
	p.nextToken()
	return pair, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.err != nil {
		p.peekToken = token.Token{Type: token.EOF}
		return
	}
	tok, err := p.l.NextToken()
	if err != nil {
		p.err = err
		tok = token.Token{Type: token.EOF}
	}
	p.peekToken = tok
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}
