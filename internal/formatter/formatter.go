package formatter

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-ajson/ast"
	"github.com/KimNorgaard/go-ajson/errors"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Formatter writes array-form nodes as annotated-json text.
type Formatter struct {
	w         io.Writer
	indent    string
	eol       string
	valueOpts []json.Options
	buf       []byte
}

// New returns a formatter that writes to w, indenting each nesting level by
// indentSpaces spaces and breaking lines with eol.
func New(w io.Writer, indentSpaces int, eol string) *Formatter {
	f := &Formatter{
		w:         w,
		indent:    strings.Repeat(" ", indentSpaces),
		eol:       eol,
		valueOpts: []json.Options{json.Deterministic(true)},
	}
	if f.indent != "" {
		f.valueOpts = append(f.valueOpts, jsontext.WithIndent(f.indent), jsontext.SpaceAfterColon(true))
	}
	return f
}

// Format writes nodes as one bracketed block followed by a single line
// terminator. Nothing is written when an error occurs.
func (f *Formatter) Format(nodes ast.Nodes) error {
	f.buf = f.buf[:0]
	if err := f.writeBlock(nodes, 0, ""); err != nil {
		return err
	}
	f.buf = append(f.buf, f.eol...)
	_, err := f.w.Write(f.buf)
	return err
}

// writeBlock writes "[", each child on its own line, and a closing "]"
// aligned with the line that opened the block.
func (f *Formatter) writeBlock(nodes ast.Nodes, depth int, path string) error {
	white := strings.Repeat(f.indent, depth)
	white1 := white + f.indent

	f.buf = append(f.buf, '[')
	f.buf = append(f.buf, f.eol...)
	for i, node := range nodes {
		if i > 0 {
			f.buf = append(f.buf, ',')
			f.buf = append(f.buf, f.eol...)
		}
		if err := f.writeNode(node, depth, white1, path+"/"+strconv.Itoa(i)); err != nil {
			return err
		}
	}
	f.buf = append(f.buf, f.eol...)
	f.buf = append(f.buf, white...)
	f.buf = append(f.buf, ']')
	return nil
}

func (f *Formatter) writeNode(node ast.Node, depth int, white1, path string) error {
	switch n := node.(type) {
	case *ast.Comment:
		if n == nil {
			break
		}
		if n.Text == "" {
			f.buf = append(f.buf, f.eol...)
		}
		f.buf = append(f.buf, white1...)
		return f.writeQuoted(n.Text, path)

	case *ast.Section:
		if n == nil {
			break
		}
		f.buf = append(f.buf, white1...)
		f.buf = append(f.buf, '[')
		if err := f.writeQuoted(n.Name, path); err != nil {
			return err
		}
		f.buf = append(f.buf, ", "...)
		if err := f.writeBlock(n.Children, depth+1, path+"/1"); err != nil {
			return err
		}
		f.buf = append(f.buf, ']')
		return nil

	case *ast.Leaf:
		if n == nil {
			break
		}
		f.buf = append(f.buf, white1...)
		f.buf = append(f.buf, '{')
		if err := f.writeQuoted(n.Name, path); err != nil {
			return err
		}
		f.buf = append(f.buf, ": "...)
		if err := f.writeValue(n, white1, path); err != nil {
			return err
		}
		f.buf = append(f.buf, '}')
		return nil
	}
	return &errors.InvalidAnnotatedJSONError{Path: path, Reason: "nil node"}
}

func (f *Formatter) writeQuoted(s, path string) error {
	b, err := jsontext.AppendQuote(f.buf, s)
	if err != nil {
		return &errors.InvalidAnnotatedJSONError{Path: path, Reason: "cannot quote string", Err: err}
	}
	f.buf = b
	return nil
}

// writeValue writes the leaf value as regular indented JSON, shifting every
// continuation line to the leaf's own indentation.
func (f *Formatter) writeValue(leaf *ast.Leaf, white1, path string) error {
	b, err := json.Marshal(leaf.Value, f.valueOpts...)
	if err != nil {
		return &errors.InvalidAnnotatedJSONError{Path: path, Reason: "cannot encode value of " + strconv.Quote(leaf.Name), Err: err}
	}
	b = bytes.TrimSuffix(b, []byte{'\n'})
	if bytes.IndexByte(b, '\n') < 0 {
		f.buf = append(f.buf, b...)
		return nil
	}
	f.buf = append(f.buf, bytes.ReplaceAll(b, []byte{'\n'}, []byte(f.eol+white1))...)
	return nil
}
