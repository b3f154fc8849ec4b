package parser_test

import (
	"testing"

	"github.com/KimNorgaard/go-optblock/errors"
	"github.com/KimNorgaard/go-optblock/internal/lexer"
	"github.com/KimNorgaard/go-optblock/internal/parser"
	"github.com/KimNorgaard/go-optblock/token"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	input := "name: fig-1\ncaption: |\n  A caption\n\"class\": 'wide' # layout\nname: fig-2\n"

	p := parser.New(lexer.New(input))
	doc, err := p.Parse()
	require.NoError(t, err)
	require.True(t, doc.Comments)
	require.Len(t, doc.Pairs, 4)

	expected := []struct {
		key   string
		value string
		style token.Style
		line  int
	}{
		{"name", "fig-1", token.PLAIN, 1},
		{"caption", "A caption\n", token.LITERAL, 2},
		{"class", "wide", token.SINGLE_QUOTED, 4},
		{"name", "fig-2", token.PLAIN, 5},
	}
	for i, e := range expected {
		pair := doc.Pairs[i]
		require.Equal(t, e.key, pair.Key.Value)
		require.Equal(t, e.value, pair.Value.Value)
		require.Equal(t, e.style, pair.Value.Style())
		require.Equal(t, e.line, pair.Key.Token.Line)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n"} {
		doc, err := parser.New(lexer.New(input)).Parse()
		require.NoError(t, err)
		require.Empty(t, doc.Pairs)
		require.False(t, doc.Comments)
	}

	doc, err := parser.New(lexer.New("# only a comment\n")).Parse()
	require.NoError(t, err)
	require.Empty(t, doc.Pairs)
	require.True(t, doc.Comments)
}

func TestParseStopsAtFirstError(t *testing.T) {
	tests := []struct {
		input string
		kind  errors.Kind
	}{
		{"a: 1\nb: 'open\n", errors.MalformedQuote},
		{"bad\n", errors.MissingColon},
		{"a: 1\nb: |0\n  x\n", errors.InvalidIndentation},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			doc, err := parser.New(lexer.New(tt.input)).Parse()
			require.Nil(t, doc)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}
