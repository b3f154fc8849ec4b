package lexer

import (
	"strings"
	"unicode/utf8"
)

var simpleEscapes = map[byte]string{
	'0':  "\x00",
	'a':  "\a",
	'b':  "\b",
	't':  "\t",
	'\t': "\t",
	'n':  "\n",
	'v':  "\v",
	'f':  "\f",
	'r':  "\r",
	'e':  "\x1b",
	' ':  " ",
	'"':  `"`,
	'/':  "/",
	'\\': `\`,
	'N':  "\u0085",
	'_':  "\u00a0",
	'L':  "\u2028",
	'P':  "\u2029",
}

// hexEscapes maps an escape letter to its number of hex digits.
var hexEscapes = map[byte]int{
	'x': 2,
	'u': 4,
	'U': 8,
}

// unescape decodes the text of a double-quoted scalar. Unknown or
// malformed escapes are kept as written.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		dec, next := unescapeAt(s, i)
		b.WriteString(dec)
		i = next
	}
	return b.String()
}

// unescapeAt decodes the escape sequence at s[i], which must be a
// backslash followed by at least one byte. It returns the decoded text and
// the index just past the sequence.
func unescapeAt(s string, i int) (string, int) {
	c := s[i+1]
	if dec, ok := simpleEscapes[c]; ok {
		return dec, i + 2
	}
	if n, ok := hexEscapes[c]; ok {
		if v, ok := readHex(s[i+2:], n); ok && utf8.ValidRune(v) {
			return string(v), i + 2 + n
		}
	}
	return s[i : i+2], i + 2
}

func readHex(s string, n int) (rune, bool) {
	if len(s) < n {
		return 0, false
	}
	var val rune
	for _, ch := range []byte(s[:n]) {
		var d rune
		switch {
		case '0' <= ch && ch <= '9':
			d = rune(ch - '0')
		case 'a' <= ch && ch <= 'f':
			d = rune(ch-'a') + 10
		case 'A' <= ch && ch <= 'F':
			d = rune(ch-'A') + 10
		default:
			return 0, false
		}
		val = val*16 + d
	}
	return val, true
}
