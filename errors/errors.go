package errors

import "fmt"

// Kind classifies a ParseError.
type Kind int

const (
	// MalformedQuote reports a quoted scalar with no closing quote.
	MalformedQuote Kind = iota + 1
	// InvalidIndentation reports a zero indentation indicator, a block
	// scalar without content, or a key line outside the block's key column.
	InvalidIndentation
	// MissingColon reports a key with no terminating ':'.
	MissingColon
	// InvalidBlockHeader reports unexpected text after a '|' or '>' marker.
	InvalidBlockHeader
	// UnexpectedContent reports text following a closed quoted scalar.
	UnexpectedContent
)

var kindNames = map[Kind]string{
	MalformedQuote:     "malformed quote",
	InvalidIndentation: "invalid indentation",
	MissingColon:       "missing colon",
	InvalidBlockHeader: "invalid block header",
	UnexpectedContent:  "unexpected content",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error lets a Kind be used as the target of errors.Is.
func (k Kind) Error() string { return k.String() }

// ParseError represents the error that stopped a parse.
// Line and Column are 1-based.
type ParseError struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("optblock: %s at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Message)
}

// Is reports whether target is the Kind of e.
func (e *ParseError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// New returns a ParseError with a formatted message.
func New(kind Kind, line, column int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
	}
}
