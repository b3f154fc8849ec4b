package ast

import (
	"testing"

	"github.com/KimNorgaard/go-optblock/token"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	document := &Document{
		Pairs: []*Pair{
			{
				Key: &Scalar{
					Token: token.Token{Type: token.KEY, Style: token.PLAIN, Literal: "my-key"},
					Value: "my-key",
				},
				Value: &Scalar{
					Token: token.Token{Type: token.VALUE, Style: token.LITERAL, Literal: "a\nb\n"},
					Value: "a\nb\n",
				},
			},
		},
		Comments: true,
	}

	expected := "\"my-key\": \"a\\nb\\n\"\n# comments\n"
	require.Equal(t, expected, document.String())
	require.Equal(t, token.LITERAL, document.Pairs[0].Value.Style())
}
