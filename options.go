package optblock

import "fmt"

type options struct {
	maxSize int
	indent  *int
}

// Option configures a parse or an encode.
type Option func(*options) error

// MaxSize returns an Option that rejects blocks longer than n bytes.
// This bounds the work done for untrusted input.
//
// n must be a positive integer.
func MaxSize(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("optblock: max size must be a positive integer")
		}
		o.maxSize = n
		return nil
	}
}

// Indent returns an Option that sets how many spaces the encoder indents
// block scalar content. The default is 2.
//
// n must be between 1 and 9.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 1 || n > 9 {
			return fmt.Errorf("optblock: indent must be between 1 and 9")
		}
		o.indent = &n
		return nil
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
