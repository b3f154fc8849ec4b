/*
Package optblock decodes option blocks: the flat "key: value" metadata that
documentation sources embed at the top of a directive, for example

	```{figure} image.png
	---
	name: fig-1
	caption: |
	  A caption
	  spanning two lines.
	---
	```

The syntax is a small subset of YAML. Keys and values are strings; there are
no nested collections, anchors, tags or implicit typing. Three value forms are
understood:

1. Plain scalars

A plain value runs to the end of the line and continues on following lines
indented deeper than its key. Continuation lines are joined with a single
space.

	key4: val4.1
	    val4.2

2. Quoted scalars

Single-quoted text is taken verbatim. Double-quoted text understands
backslash escapes such as \", \\, \e, \n, \t and \xHH. A '#' inside quotes is
never a comment.

	escapes: "\"\e\x07"

3. Block scalars

A value of '|' (literal) or '>' (folded) starts a block of more-indented
lines. An optional digit gives the indentation of the content relative to the
key, and an optional '-' (strip) or '+' (keep) controls trailing newlines.

	key3: |-
	  a
	  b

Comments start with an unquoted '#' and run to the end of the line. They are
discarded, but Result.Comments reports whether any were seen so that callers
can warn about them.

Parse returns plain pairs in order of appearance. ParseDocument returns an
ast.Document that also records the position and style of every scalar.
Malformed input is reported as an *errors.ParseError; no partial result is
returned.

Marshal and Encoder write pairs back out. Each value is written in the
simplest form that parses back to the same string: plain, a literal block
scalar for multi-line text, or double-quoted otherwise. Comments are not
preserved.
*/
package optblock
