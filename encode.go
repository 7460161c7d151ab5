package ajson

import (
	"io"

	"github.com/KimNorgaard/go-ajson/internal/formatter"
)

// Encoder writes annotated-json text to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the annotated-json text of v to the stream, followed by
// the line terminator. It accepts the same values as Stringify.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	nodes, err := toNodes(v)
	if err != nil {
		return err
	}
	return formatter.New(e.w, o.indent, o.eol).Format(nodes)
}
