package ajson

import "fmt"

// Option configures how Stringify and Encoder lay out array-form text.
type Option func(*options) error

type options struct {
	indent int
	eol    string
}

const (
	defaultIndent = 2
	defaultEOL    = "\n"
)

func newOptions(opts []Option) (*options, error) {
	o := &options{indent: defaultIndent, eol: defaultEOL}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent returns an Option that sets the number of spaces added per
// nesting level. The default is 2. With 0, nodes still go on separate lines
// but leaf values are written compactly.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("ajson: indent spaces cannot be negative")
		}
		o.indent = spaces
		return nil
	}
}

// LineTerminator returns an Option that sets the line break written between
// lines and once at the end of the output. It must be "\n" (the default)
// or "\r\n".
func LineTerminator(eol string) Option {
	return func(o *options) error {
		if eol != "\n" && eol != "\r\n" {
			return fmt.Errorf("ajson: unsupported line terminator %q", eol)
		}
		o.eol = eol
		return nil
	}
}
