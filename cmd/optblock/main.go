// Command optblock extracts directive options from Markdown documents.
//
// It parses each document with goldmark and reports every fenced code block
// whose info string has the form "{name} arguments", with the directive's
// arguments, options and body as one JSON object per line.
//
// Usage:
//
//	optblock [-yaml] [file.md ...]
//	optblock -raw [-fmt] [file]
//
// With -raw the input is a bare option block, printed in the form
// {"dict": [[key, value], ...], "comments": bool}. Adding -fmt prints the
// block rewritten in canonical form instead. Input is read from stdin when
// no file is given.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"

	"github.com/KimNorgaard/go-optblock"
	"github.com/KimNorgaard/go-optblock/directive"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var directiveInfo = regexp.MustCompile(`^\{([^}\s]+)\}\s*(.*)$`)

// generic accepts every option and an optional argument that may contain
// whitespace.
var generic = &directive.Directive{
	OptionalArguments:       1,
	FinalArgumentWhitespace: true,
	HasContent:              true,
	Permissive:              true,
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	raw     bool
	format  bool
	asYAML  bool
	maxSize int
	files   []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("optblock", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := &config{}
	fs.BoolVar(&cfg.raw, "raw", false, "parse the input as a bare option block")
	fs.BoolVar(&cfg.format, "fmt", false, "with -raw, print the block in canonical form")
	fs.BoolVar(&cfg.asYAML, "yaml", false, "read fenced option blocks as full YAML")
	fs.IntVar(&cfg.maxSize, "max-size", 1<<20, "maximum size of an option block in bytes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.format && !cfg.raw {
		return nil, fmt.Errorf("-fmt requires -raw")
	}
	if cfg.maxSize <= 0 {
		return nil, fmt.Errorf("-max-size must be positive")
	}
	cfg.files = fs.Args()
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := log.New(stderr, "optblock: ", 0)

	if cfg.raw {
		if len(cfg.files) > 1 {
			return fmt.Errorf("-raw takes at most one file")
		}
		name, src, err := readInput(cfg.files, stdin)
		if err != nil {
			return err
		}
		return runRaw(name, src, cfg, stdout, logger)
	}

	if len(cfg.files) == 0 {
		cfg.files = []string{"-"}
	}
	enc := json.NewEncoder(stdout)
	for _, file := range cfg.files {
		name, src, err := readInput([]string{file}, stdin)
		if err != nil {
			return err
		}
		for _, out := range extractDirectives(name, src, cfg, logger) {
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func runRaw(name string, src []byte, cfg *config, stdout io.Writer, logger *log.Logger) error {
	res, err := optblock.ParseBytes(src, optblock.MaxSize(cfg.maxSize))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if res.Comments {
		logger.Printf("%s: comments were present and discarded", name)
	}
	if cfg.format {
		return optblock.NewEncoder(stdout).Encode(res)
	}
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintf(stdout, "%s\n", out)
	return err
}

func readInput(files []string, stdin io.Reader) (string, []byte, error) {
	if len(files) == 0 || files[0] == "-" {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", src, nil
	}
	src, err := os.ReadFile(files[0])
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", files[0], err)
	}
	return files[0], src, nil
}

// directiveOutput is the JSON form of one directive.
type directiveOutput struct {
	File      string         `json:"file"`
	Line      int            `json:"line"`
	Name      string         `json:"name"`
	Arguments []string       `json:"arguments"`
	Options   map[string]any `json:"options"`
	Body      []string       `json:"body"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// extractDirectives walks the Markdown AST and parses every directive
// fence. Directives with bad arguments are logged and skipped.
func extractDirectives(name string, source []byte, cfg *config, logger *log.Logger) []directiveOutput {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var outs []directiveOutput
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok || fenced.Info == nil {
			return ast.WalkContinue, nil
		}
		m := directiveInfo.FindSubmatch(fenced.Info.Segment.Value(source))
		if m == nil {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(source))
		}
		line := countLines(source, fenced.Info.Segment.Start) + 1

		var opts []directive.Option
		opts = append(opts, directive.Line(line))
		if cfg.asYAML {
			opts = append(opts, directive.AsYAML())
		}
		if buf.Len() > cfg.maxSize {
			logger.Printf("%s:%d: {%s}: content exceeds %d bytes, skipped", name, line, m[1], cfg.maxSize)
			return ast.WalkContinue, nil
		}
		res, err := directive.ParseText(generic, string(m[2]), buf.String(), opts...)
		if err != nil {
			logger.Printf("%s:%d: {%s}: %v", name, line, m[1], err)
			return ast.WalkContinue, nil
		}

		out := directiveOutput{
			File:      name,
			Line:      line,
			Name:      string(m[1]),
			Arguments: res.Arguments,
			Options:   res.Options,
			Body:      res.Body,
		}
		for _, w := range res.Warnings {
			logger.Printf("%s:%d: {%s}: %s", name, line, m[1], w.Message)
			out.Warnings = append(out.Warnings, w.Message)
		}
		outs = append(outs, out)
		return ast.WalkContinue, nil
	})
	return outs
}

// countLines counts newlines before the given byte offset.
func countLines(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte("\n"))
}
