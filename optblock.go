package optblock

import (
	"encoding/json"
	"fmt"

	"github.com/KimNorgaard/go-optblock/ast"
	"github.com/KimNorgaard/go-optblock/internal/lexer"
	"github.com/KimNorgaard/go-optblock/internal/parser"
)

// Pair is a single key and its decoded value.
type Pair struct {
	Key   string
	Value string
}

// Result is the outcome of parsing an option block.
type Result struct {
	// Pairs holds every key in order of appearance. Repeated keys are not
	// merged.
	Pairs []Pair
	// Comments is true when at least one '#' comment was discarded.
	Comments bool
}

// Parse decodes an option block into its ordered key/value pairs.
func Parse(block string, opts ...Option) (*Result, error) {
	doc, err := ParseDocument(block, opts...)
	if err != nil {
		return nil, err
	}

	r := &Result{Pairs: make([]Pair, len(doc.Pairs)), Comments: doc.Comments}
	for i, p := range doc.Pairs {
		r.Pairs[i] = Pair{Key: p.Key.Value, Value: p.Value.Value}
	}
	return r, nil
}

// ParseBytes is like Parse but takes the block as a byte slice.
func ParseBytes(data []byte, opts ...Option) (*Result, error) {
	return Parse(string(data), opts...)
}

// ParseDocument decodes an option block into a Document that keeps the
// position and style of every key and value.
func ParseDocument(block string, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.maxSize > 0 && len(block) > o.maxSize {
		return nil, &SizeError{Size: len(block), Max: o.maxSize}
	}

	p := parser.New(lexer.New(block))
	return p.Parse()
}

// Get returns the value of the last pair named key.
func (r *Result) Get(key string) (string, bool) {
	for i := len(r.Pairs) - 1; i >= 0; i-- {
		if r.Pairs[i].Key == key {
			return r.Pairs[i].Value, true
		}
	}
	return "", false
}

// Map returns the pairs as a map. When a key repeats, its last value wins.
func (r *Result) Map() map[string]string {
	m := make(map[string]string, len(r.Pairs))
	for _, p := range r.Pairs {
		m[p.Key] = p.Value
	}
	return m
}

// Keys returns the distinct keys in order of first appearance.
func (r *Result) Keys() []string {
	seen := make(map[string]bool, len(r.Pairs))
	keys := make([]string, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		if !seen[p.Key] {
			seen[p.Key] = true
			keys = append(keys, p.Key)
		}
	}
	return keys
}

type jsonResult struct {
	Dict     [][2]string `json:"dict"`
	Comments bool        `json:"comments"`
}

// MarshalJSON encodes r as {"dict": [[key, value], ...], "comments": bool}.
func (r *Result) MarshalJSON() ([]byte, error) {
	jr := jsonResult{Dict: make([][2]string, len(r.Pairs)), Comments: r.Comments}
	for i, p := range r.Pairs {
		jr.Dict[i] = [2]string{p.Key, p.Value}
	}
	return json.Marshal(jr)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var jr jsonResult
	if err := json.Unmarshal(data, &jr); err != nil {
		return fmt.Errorf("optblock: %w", err)
	}
	r.Pairs = make([]Pair, len(jr.Dict))
	for i, kv := range jr.Dict {
		r.Pairs[i] = Pair{Key: kv[0], Value: kv[1]}
	}
	r.Comments = jr.Comments
	return nil
}
