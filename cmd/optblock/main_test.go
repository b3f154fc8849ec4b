package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const markdown = "# Title\n" +
	"\n" +
	"```{figure} images/fig.png\n" +
	"---\n" +
	"name: fig-1\n" +
	"caption: |\n" +
	"  A caption\n" +
	"---\n" +
	"Body text\n" +
	"```\n" +
	"\n" +
	"```{note}\n" +
	":class: tip # style\n" +
	"Remember this.\n" +
	"```\n" +
	"\n" +
	"```go\n" +
	"fmt.Println(\"not a directive\")\n" +
	"```\n"

func TestRunMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(markdown), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{path}, strings.NewReader(""), &stdout, &stderr))

	dec := json.NewDecoder(&stdout)
	var outs []directiveOutput
	for {
		var out directiveOutput
		err := dec.Decode(&out)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		outs = append(outs, out)
	}
	require.Len(t, outs, 2)

	require.Equal(t, "figure", outs[0].Name)
	require.Equal(t, 3, outs[0].Line)
	require.Equal(t, []string{"images/fig.png"}, outs[0].Arguments)
	require.Equal(t, map[string]any{"name": "fig-1", "caption": "A caption\n"}, outs[0].Options)
	require.Equal(t, []string{"Body text"}, outs[0].Body)
	require.Empty(t, outs[0].Warnings)

	require.Equal(t, "note", outs[1].Name)
	require.Equal(t, 12, outs[1].Line)
	require.Equal(t, map[string]any{"class": "tip"}, outs[1].Options)
	require.Equal(t, []string{"Remember this."}, outs[1].Body)
	require.Len(t, outs[1].Warnings, 1)
	require.Contains(t, stderr.String(), "doc.md:12: {note}: Directive options has # comments")
}

func TestRunMarkdownYAML(t *testing.T) {
	src := "```{table} Totals\n---\nwidths: [1, 2]\n---\n| a |\n```\n"

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-yaml"}, strings.NewReader(src), &stdout, &stderr))

	var out directiveOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Equal(t, "<stdin>", out.File)
	require.Equal(t, []string{"Totals"}, out.Arguments)
	require.Equal(t, map[string]any{"widths": []any{float64(1), float64(2)}}, out.Options)
	require.Equal(t, []string{"| a |"}, out.Body)
}

func TestRunRaw(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-raw"}, strings.NewReader("key1: |\n  a\nkey2: b # c\n"), &stdout, &stderr)
	require.NoError(t, err)
	require.JSONEq(t, `{"dict": [["key1", "a\n"], ["key2", "b"]], "comments": true}`, stdout.String())
	require.Contains(t, stderr.String(), "<stdin>: comments were present and discarded")
}

func TestRunRawFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := "key1: >\n  a\n  b\n# note\n'key 2': x # y\n"
	err := run([]string{"-raw", "-fmt"}, strings.NewReader(in), &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, "key1: |\n  a b\nkey 2: x\n", stdout.String())
}

func TestRunRawErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-raw"}, strings.NewReader(`key: "open`), &stdout, &stderr)
	require.ErrorContains(t, err, "malformed quote")

	err = run([]string{"-raw", "-max-size", "2"}, strings.NewReader("a: b"), &stdout, &stderr)
	require.ErrorContains(t, err, "exceeds limit of 2 bytes")

	err = run([]string{"-fmt"}, strings.NewReader(""), &stdout, &stderr)
	require.EqualError(t, err, "-fmt requires -raw")

	err = run([]string{"-max-size", "0"}, strings.NewReader(""), &stdout, &stderr)
	require.EqualError(t, err, "-max-size must be positive")

	err = run([]string{"-raw", "a", "b"}, strings.NewReader(""), &stdout, &stderr)
	require.EqualError(t, err, "-raw takes at most one file")

	err = run([]string{filepath.Join(t.TempDir(), "missing.md")}, strings.NewReader(""), &stdout, &stderr)
	require.ErrorContains(t, err, "failed to read")
}
