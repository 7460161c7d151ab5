package ajson

import (
	"bytes"

	"github.com/KimNorgaard/go-ajson/ast"
)

// Document is a parsed annotated-json document: the data tree and the
// annotation tree describing where its comments go.
//
// Data may be modified freely between Parse and Render. Annotations is
// meant to be passed back to Render untouched.
type Document struct {
	Data        *Object     `json:"json"`
	Annotations *Annotation `json:"annotations"`
}

// Stringify returns the annotated-json text of v.
//
// v may be an ast.Nodes sequence, a decoded []any array form, or a
// *Document, which is rendered first. Any other value yields an
// *InvalidInputError.
func Stringify(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toNodes resolves any accepted Stringify input to its node sequence.
func toNodes(v any) (ast.Nodes, error) {
	if doc, ok := v.(*Document); ok {
		return Render(doc)
	}
	return decodeNodes(v)
}
