package directive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConverters(t *testing.T) {
	tests := []struct {
		name     string
		convert  Converter
		input    string
		expected any
		err      string
	}{
		{"flag ignores value", Flag, "anything", nil, ""},
		{"unchanged", Unchanged, " a b ", " a b ", ""},
		{"unchanged required", UnchangedRequired, "", nil, "argument required but none supplied"},
		{"int", Int, " 42 ", 42, ""},
		{"int invalid", Int, "4x", nil, `invalid integer "4x"`},
		{"non-negative zero", NonNegativeInt, "0", 0, ""},
		{"non-negative negative", NonNegativeInt, "-1", nil, "negative value; must be positive or zero"},
		{"positive zero", PositiveInt, "0", nil, "negative or zero value; must be positive"},
		{"class list", ClassList, "a  b\nc", []string{"a", "b", "c"}, ""},
		{"class list empty", ClassList, " ", nil, "argument required but none supplied"},
		{"path", Path, " img/a.png\n", "img/a.png", ""},
		{"choice", Choice("left", "right"), " Left ", "left", ""},
		{"choice unknown", Choice("left", "right"), "up", nil, `"up" unknown; choose from ['left', 'right']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.convert(tt.input)
			if tt.err != "" {
				require.EqualError(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

func TestDedent(t *testing.T) {
	require.Equal(t, "a: 1\n  b\n\nc: 2\n", dedent("  a: 1\n    b\n   \n  c: 2\n"))
	require.Equal(t, "x", dedent("x"))
}

func TestSplitOptionBlock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		block   string
		found   bool
		body    string
	}{
		{"fenced", "---\na: 1\n---\nbody\n", "a: 1\n", true, "body\n"},
		{"fenced longer end", "---\na: 1\n-----\nbody", "a: 1\n", true, "body"},
		{"colon lines", ":a: 1\n  :b: 2\nbody", "a: 1\nb: 2", true, "body"},
		{"none", "body\n", "", false, "body\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, found, body := splitOptionBlock(tt.content)
			require.Equal(t, tt.block, block)
			require.Equal(t, tt.found, found)
			require.Equal(t, tt.body, body)
		})
	}
}
