package ajson

import (
	"strconv"

	"github.com/KimNorgaard/go-ajson/ast"
)

// Parse decodes annotated-json array-form text and splits it into a data
// tree and an annotation tree.
//
// Syntax errors in the JSON text are returned as reported by the
// github.com/go-json-experiment/json/jsontext decoder. A root that is not
// an array yields an *InvalidInputError; an element that is not a comment,
// a section or a single-key leaf yields an *InvalidAnnotatedJSONError.
func Parse(data []byte) (*Document, error) {
	v, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	return ParseValue(v)
}

// ParseValue is like Parse for an array form that has already been decoded.
// v must be a []any whose elements are strings, [name, children] pairs and
// single-key *Object or map[string]any values, or an ast.Nodes sequence.
func ParseValue(v any) (*Document, error) {
	nodes, err := decodeNodes(v)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Data:        &Object{},
		Annotations: newAnnotation(),
	}
	if err := split(doc.Data, doc.Annotations, nodes, ""); err != nil {
		return nil, err
	}
	return doc, nil
}

// split walks the nodes of one scope, writing values into data and comment
// placement into ann. Comments are buffered until the next keyed node
// claims them as Pre; leftovers become the Post of the last keyed node, or
// the Inner of the scope itself when it has no keyed node.
func split(data *Object, ann *Annotation, nodes ast.Nodes, path string) error {
	var (
		comments []string
		last     *Annotation
	)
	claim := func(a *Annotation) {
		if len(comments) > 0 {
			a.Pre = append(a.Pre, comments...)
			comments = nil
		}
	}

	for i, n := range nodes {
		switch n := n.(type) {
		case *ast.Comment:
			comments = append(comments, n.Text)

		case *ast.Section:
			elemPath := path + "/" + strconv.Itoa(i)
			child := ann.child(n.Name)
			if child.Value {
				return invalidNode(elemPath, "section %q repeats a leaf key", n.Name)
			}
			sub, err := data.object(n.Name)
			if err != nil {
				return invalidNode(elemPath, "section %q: %v", n.Name, err)
			}
			claim(child)
			if err := split(sub, child, n.Children, elemPath+"/1"); err != nil {
				return err
			}
			last = child

		case *ast.Leaf:
			child := ann.child(n.Name)
			if !child.Value && data.Has(n.Name) {
				return invalidNode(path+"/"+strconv.Itoa(i), "leaf %q repeats a section key", n.Name)
			}
			claim(child)
			child.Value = true
			data.Set(n.Name, n.Value)
			last = child

		default:
			return invalidNode(path+"/"+strconv.Itoa(i), "nil node")
		}
	}

	if len(comments) > 0 {
		if last != nil {
			last.Post = append(last.Post, comments...)
		} else {
			ann.Inner = append(ann.Inner, comments...)
		}
	}
	return nil
}
