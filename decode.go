package ajson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Decoder reads annotated-json documents from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder may buffer data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the whole input and parses it as a single array-form
// document.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() (*Document, error) {
	if d.r == nil {
		return nil, fmt.Errorf("ajson: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Unmarshal parses annotated-json text and stores its data tree in the
// value pointed to by v, dropping all comments. Struct fields are matched
// the way github.com/go-json-experiment/json matches them.
func Unmarshal(data []byte, v any) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return doc.Decode(v)
}

// decodeText decodes a single JSON value. Objects decode as *Object so that
// member order survives; arrays as []any, numbers as float64.
//
// Syntax errors are returned as reported by jsontext.
func decodeText(data []byte) (any, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("ajson: unexpected data after top-level value at offset %d", dec.InputOffset())
		}
		return nil, err
	}
	return v, nil
}

func decodeValue(dec *jsontext.Decoder) (any, error) {
	switch dec.PeekKind() {
	case '{':
		obj := &Object{}
		if err := obj.decodeMembers(dec); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		arr := []any{}
		for dec.PeekKind() != ']' {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	}

	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return nil, nil
	case 'f', 't':
		return tok.Bool(), nil
	case '"':
		return tok.String(), nil
	case '0':
		lit := tok.String()
		f, err := parseNumber(lit, dec.InputOffset())
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("ajson: unexpected token %v at offset %d", tok.Kind(), dec.InputOffset())
	}
}

// parseNumber converts a JSON number literal to float64. Negative zero
// becomes zero, as JSON.stringify prints it.
func parseNumber(lit string, offset int64) (float64, error) {
	f, err := strconv.ParseFloat(lit, 64)
	switch {
	case math.IsInf(f, 0):
		return 0, fmt.Errorf("ajson: number %s overflows float64 at offset %d", lit, offset)
	case err != nil && !errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("ajson: invalid number %s at offset %d: %w", lit, offset, err)
	}
	if f == 0 {
		return 0, nil
	}
	return f, nil
}

// decodeMembers reads a whole JSON object. A repeated name keeps its first
// position and its last value.
func (o *Object) decodeMembers(dec *jsontext.Decoder) error {
	if _, err := dec.ReadToken(); err != nil {
		return err
	}
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return err
		}
		name := tok.String()
		v, err := decodeValue(dec)
		if err != nil {
			return err
		}
		o.Set(name, v)
	}
	_, err := dec.ReadToken()
	return err
}

// Decode stores the data tree of d in the value pointed to by v.
func (d *Document) Decode(v any) error {
	if d == nil || d.Data == nil {
		return &InvalidInputError{Reason: "document has no data tree"}
	}
	b, err := json.Marshal(d.Data)
	if err != nil {
		return fmt.Errorf("ajson: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("ajson: %w", err)
	}
	return nil
}
