// Package directive parses the text of a fenced documentation directive:
// its arguments, its option block and its body.
//
// A directive is written as
//
//	```{name} arguments
//	---
//	option1: value
//	option2: |
//	  Longer text block
//	---
//	content...
//	```
//
// or, with the short option syntax, as leading lines starting with ':'
//
//	```{name} arguments
//	:option1: value
//	:option2: other
//
//	content...
//	```
//
// If the first line of the body is blank it is dropped, which allows a blank
// line between the options and the content.
package directive

import (
	"fmt"
	"strings"
	"unicode"
)

// Directive describes what a directive accepts.
type Directive struct {
	Name string

	RequiredArguments int
	OptionalArguments int
	// FinalArgumentWhitespace lets the last argument contain whitespace.
	FinalArgumentWhitespace bool

	HasContent bool

	// OptionSpec lists the accepted options. A directive without options
	// treats an option block as part of its body.
	OptionSpec Spec
	// Permissive accepts every option without conversion.
	Permissive bool
}

func (d *Directive) acceptsOptions() bool {
	return d.Permissive || len(d.OptionSpec) > 0
}

// Result is the parsed text of a directive.
type Result struct {
	Arguments []string
	Options   map[string]any
	Body      []string
	// BodyOffset is the number of content lines before the body.
	BodyOffset int
	Warnings   []Warning
}

// An ArgumentError reports a wrong number of directive arguments.
type ArgumentError struct {
	Directive string
	Message   string
}

func (e *ArgumentError) Error() string {
	return "directive " + e.Directive + ": " + e.Message
}

// ParseText parses the full text of a directive. firstLine is the text on
// the line of the directive name, content everything after it.
//
// Problems with options or content are returned as warnings; a wrong number
// of arguments is an error.
func ParseText(d *Directive, firstLine, content string, opts ...Option) (*Result, error) {
	res := &Result{Options: map[string]any{}}
	bodyLines := splitLines(content)

	if d.acceptsOptions() {
		parsed, err := ParseOptions(content, d, opts...)
		if err != nil {
			return nil, err
		}
		res.Options = parsed.Options
		res.Warnings = append(res.Warnings, parsed.Warnings...)
		bodyLines = splitLines(parsed.Body)
		res.BodyOffset = len(splitLines(content)) - len(bodyLines)
	}

	if d.RequiredArguments == 0 && d.OptionalArguments == 0 {
		// Without arguments the body starts on the directive line.
		if firstLine != "" {
			bodyLines = append([]string{firstLine}, bodyLines...)
		}
	} else {
		args, err := parseArguments(d, firstLine)
		if err != nil {
			return nil, err
		}
		res.Arguments = args
	}

	if len(bodyLines) > 0 && strings.TrimSpace(bodyLines[0]) == "" {
		bodyLines = bodyLines[1:]
		res.BodyOffset++
	}
	if len(bodyLines) > 0 && !d.HasContent {
		res.Warnings = append(res.Warnings, Warning{Message: "Has content, but none permitted"})
	}
	res.Body = bodyLines
	return res, nil
}

func parseArguments(d *Directive, text string) ([]string, error) {
	required, optional := d.RequiredArguments, d.OptionalArguments
	args := strings.Fields(text)
	switch {
	case len(args) < required:
		return nil, &ArgumentError{
			Directive: d.Name,
			Message:   fmt.Sprintf("%d argument(s) required, %d supplied", required, len(args)),
		}
	case len(args) > required+optional:
		if !d.FinalArgumentWhitespace {
			return nil, &ArgumentError{
				Directive: d.Name,
				Message:   fmt.Sprintf("maximum %d argument(s) allowed, %d supplied", required+optional, len(args)),
			}
		}
		return fieldsN(text, required+optional), nil
	}
	return args, nil
}

// fieldsN splits s on whitespace into at most n fields; the last field
// keeps the rest of s with its inner whitespace.
func fieldsN(s string, n int) []string {
	var out []string
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	for len(out) < n-1 && s != "" {
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			break
		}
		out = append(out, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	if s != "" {
		out = append(out, strings.TrimRightFunc(s, unicode.IsSpace))
	}
	return out
}
