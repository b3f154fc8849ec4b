package optblock_test

import (
	"bytes"
	"testing"

	"github.com/KimNorgaard/go-optblock"
	"github.com/KimNorgaard/go-optblock/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	r := &optblock.Result{Pairs: []optblock.Pair{
		{Key: "name", Value: "fig"},
		{Key: "caption", Value: "line one\nline two\n"},
		{Key: "note", Value: "a # b"},
		{Key: "empty", Value: ""},
	}}

	out, err := optblock.Marshal(r)
	require.NoError(t, err)
	require.Equal(t, "name: fig\ncaption: |\n  line one\n  line two\nnote: \"a # b\"\nempty:\n", string(out))

	back, err := optblock.ParseBytes(out)
	require.NoError(t, err)
	require.Equal(t, r.Pairs, back.Pairs)
	require.False(t, back.Comments)
}

func TestMarshalIndent(t *testing.T) {
	r := &optblock.Result{Pairs: []optblock.Pair{{Key: "k", Value: "a\nb"}}}

	out, err := optblock.Marshal(r, optblock.Indent(3))
	require.NoError(t, err)
	require.Equal(t, "k: |-\n   a\n   b\n", string(out))
}

func TestMarshalInvalidIndent(t *testing.T) {
	for _, n := range []int{0, 10, -1} {
		_, err := optblock.Marshal(&optblock.Result{}, optblock.Indent(n))
		require.EqualError(t, err, "optblock: indent must be between 1 and 9")
	}
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := optblock.NewEncoder(&buf)
	require.NoError(t, enc.Encode(&optblock.Result{Pairs: []optblock.Pair{{Key: "a", Value: "1"}}}))
	require.NoError(t, enc.Encode(&optblock.Result{Pairs: []optblock.Pair{{Key: "b", Value: "2"}}}))
	require.Equal(t, "a: 1\nb: 2\n", buf.String())
}

func TestMarshalFixtures(t *testing.T) {
	names, err := testutil.Fixtures()
	require.NoError(t, err)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			data, err := testutil.ReadTestData(name + ".txt")
			require.NoError(t, err)

			first, err := optblock.ParseBytes(data)
			if err != nil {
				t.Skip("fixture does not parse")
			}
			out, err := optblock.Marshal(first)
			require.NoError(t, err)

			second, err := optblock.ParseBytes(out)
			require.NoError(t, err, "output:\n%s", out)
			require.Equal(t, first.Pairs, second.Pairs)
		})
	}
}
