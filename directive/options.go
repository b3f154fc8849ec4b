package directive

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/KimNorgaard/go-optblock"
	"github.com/KimNorgaard/go-optblock/errors"
	"gopkg.in/yaml.v3"
)

var fenceEnd = regexp.MustCompile(`(?m)^-{3,}`)

type options struct {
	asYAML     bool
	line       int
	additional map[string]string
}

// Option configures option parsing.
type Option func(*options) error

// AsYAML returns an Option that reads the option block as full YAML and
// returns its mapping without validation.
func AsYAML() Option {
	return func(o *options) error {
		o.asYAML = true
		return nil
	}
}

// Line returns an Option setting the line number reported with warnings.
func Line(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("directive: line must not be negative")
		}
		o.line = n
		return nil
	}
}

// AdditionalOptions returns an Option supplying option values that apply
// unless the option block sets them.
func AdditionalOptions(m map[string]string) Option {
	return func(o *options) error {
		o.additional = m
		return nil
	}
}

// Warning is a non-fatal problem found while parsing a directive.
type Warning struct {
	Message string
	Line    int // 0 when unknown
}

// OptionsResult holds the outcome of ParseOptions.
type OptionsResult struct {
	// Body is the content that follows the option block.
	Body     string
	Options  map[string]any
	Warnings []Warning
}

// ParseOptions separates the option block from the directive content and
// validates the options against d.
//
// The option block is either fenced by lines starting with "---", or made
// of the leading lines that start with ':'.
func ParseOptions(content string, d *Directive, opts ...Option) (*OptionsResult, error) {
	o := options{}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	block, found, body := splitOptionBlock(content)
	if found && strings.HasPrefix(content, "---") && o.line > 0 {
		o.line++
	}
	res := &OptionsResult{Body: body, Options: map[string]any{}}

	if o.asYAML {
		res.Options, res.Warnings = parseYAML(block, o.line)
		return res, nil
	}

	raw := map[string]string{}
	var order []string
	if found {
		parsed, err := optblock.Parse(block)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{
				Message: "Invalid options format: " + problem(err),
				Line:    o.line,
			})
			return res, nil
		}
		if parsed.Comments {
			res.Warnings = append(res.Warnings, Warning{
				Message: "Directive options has # comments, which may not be supported in future versions.",
				Line:    o.line,
			})
		}
		order = parsed.Keys()
		raw = parsed.Map()
	}

	if d.Permissive {
		for _, name := range order {
			res.Options[name] = raw[name]
		}
		return res, nil
	}

	// The option block takes priority over additional options.
	extra := make([]string, 0, len(o.additional))
	for name := range o.additional {
		if _, ok := raw[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		raw[name] = o.additional[name]
	}
	order = append(extra, order...)

	var unknown []string
	for _, name := range order {
		convert, ok := d.OptionSpec[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		v, err := convert(raw[name])
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{
				Message: fmt.Sprintf("Invalid option value for %q: %s: %s", name, raw[name], err),
				Line:    o.line,
			})
			continue
		}
		res.Options[name] = v
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		allowed := make([]string, 0, len(d.OptionSpec))
		for name := range d.OptionSpec {
			allowed = append(allowed, name)
		}
		sort.Strings(allowed)
		res.Warnings = append(res.Warnings, Warning{
			Message: fmt.Sprintf("Unknown option keys: %s (allowed: %s)", quoteList(unknown), quoteList(allowed)),
			Line:    o.line,
		})
	}
	return res, nil
}

// splitOptionBlock returns the option block at the start of content, if
// any, and the content that follows it.
func splitOptionBlock(content string) (block string, found bool, body string) {
	switch {
	case strings.HasPrefix(content, "---"):
		_, rest, _ := strings.Cut(content, "\n")
		if loc := fenceEnd.FindStringIndex(rest); loc != nil {
			block = rest[:loc[0]]
			body = rest[min(loc[1]+1, len(rest)):]
		} else {
			block = rest
		}
		return dedent(block), true, body
	case strings.HasPrefix(strings.TrimLeft(content, " \t\r\n"), ":"):
		lines := splitLines(content)
		var blockLines []string
		for len(lines) > 0 {
			s := strings.TrimLeft(lines[0], " \t")
			if !strings.HasPrefix(s, ":") {
				break
			}
			blockLines = append(blockLines, s[1:])
			lines = lines[1:]
		}
		return strings.Join(blockLines, "\n"), true, strings.Join(lines, "\n")
	}
	return "", false, content
}

func parseYAML(block string, line int) (map[string]any, []Warning) {
	var v any
	if err := yaml.Unmarshal([]byte(block), &v); err != nil {
		return map[string]any{}, []Warning{{Message: "Invalid options format (bad YAML)", Line: line}}
	}
	switch m := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, nil
	}
	return map[string]any{}, []Warning{{Message: "Invalid options format (not a dict)", Line: line}}
}

func problem(err error) string {
	var pe *errors.ParseError
	if stderrors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

// dedent removes the indentation common to all non-blank lines. Blank
// lines are reduced to empty lines.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	prefix := ""
	first := true
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		indent := ln[:len(ln)-len(strings.TrimLeft(ln, " \t"))]
		switch {
		case first:
			prefix, first = indent, false
		default:
			prefix = commonPrefix(prefix, indent)
		}
	}
	for i, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = ln[len(prefix):]
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// splitLines splits s into lines without their terminators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
