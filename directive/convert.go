package directive

import (
	"fmt"
	"strconv"
	"strings"
)

// Converter validates and converts the raw value of an option. An option
// written without a value is passed as the empty string.
type Converter func(value string) (any, error)

// Spec maps option names to their converters.
type Spec map[string]Converter

// Flag accepts any value and converts it to nil; only the presence of the
// option matters.
func Flag(string) (any, error) { return nil, nil }

// Unchanged returns the value as is.
func Unchanged(value string) (any, error) { return value, nil }

// UnchangedRequired returns the value as is, rejecting an empty one.
func UnchangedRequired(value string) (any, error) {
	if value == "" {
		return nil, fmt.Errorf("argument required but none supplied")
	}
	return value, nil
}

// Int parses the value as a decimal integer.
func Int(value string) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", value)
	}
	return n, nil
}

// NonNegativeInt parses the value as an integer >= 0.
func NonNegativeInt(value string) (any, error) {
	v, err := Int(value)
	if err != nil {
		return nil, err
	}
	if v.(int) < 0 {
		return nil, fmt.Errorf("negative value; must be positive or zero")
	}
	return v, nil
}

// PositiveInt parses the value as an integer > 0.
func PositiveInt(value string) (any, error) {
	v, err := Int(value)
	if err != nil {
		return nil, err
	}
	if v.(int) <= 0 {
		return nil, fmt.Errorf("negative or zero value; must be positive")
	}
	return v, nil
}

// ClassList splits the value on whitespace into a list of names.
func ClassList(value string) (any, error) {
	names := strings.Fields(value)
	if len(names) == 0 {
		return nil, fmt.Errorf("argument required but none supplied")
	}
	return names, nil
}

// Path joins the lines of the value and removes surrounding whitespace.
func Path(value string) (any, error) {
	return strings.Join(strings.Fields(strings.ReplaceAll(value, "\n", "")), " "), nil
}

// Choice returns a Converter accepting one of values, compared without
// regard to case or surrounding whitespace.
func Choice(values ...string) Converter {
	return func(value string) (any, error) {
		v := strings.ToLower(strings.TrimSpace(value))
		for _, c := range values {
			if v == c {
				return v, nil
			}
		}
		return nil, fmt.Errorf("%q unknown; choose from %s", value, quoteList(values))
	}
}

// quoteList formats names as ['a', 'b'].
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
