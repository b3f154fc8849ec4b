package directive

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode stores validated options in the struct pointed to by v. Fields are
// matched by their `option` tag, and string values are converted to the
// field types where possible. Options converted by Flag decode as true.
func Decode(options map[string]any, v any) error {
	in := make(map[string]any, len(options))
	for name, value := range options {
		if value == nil {
			value = true
		}
		in[name] = value
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          "option",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("directive: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("directive: %w", err)
	}
	return nil
}
