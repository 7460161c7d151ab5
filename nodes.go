package ajson

import (
	"fmt"
	"strconv"

	"github.com/KimNorgaard/go-ajson/ast"
)

// decodeNodes converts a decoded array-form value into its node sequence.
// This is the only place where element shapes are checked.
func decodeNodes(v any) (ast.Nodes, error) {
	switch v := v.(type) {
	case ast.Nodes:
		return v, checkNodes(v, "")
	case []ast.Node:
		return ast.Nodes(v), checkNodes(v, "")
	case []any:
		return decodeElements(v, "")
	default:
		return nil, errRootNotArray
	}
}

func decodeElements(elems []any, path string) (ast.Nodes, error) {
	nodes := make(ast.Nodes, 0, len(elems))
	for i, elem := range elems {
		n, err := decodeNode(elem, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(elem any, path string) (ast.Node, error) {
	switch elem := elem.(type) {
	case string:
		return &ast.Comment{Text: elem}, nil
	case []any:
		if len(elem) != 2 {
			return nil, invalidNode(path, "section must be a [name, children] pair, got %d elements", len(elem))
		}
		name, ok := elem[0].(string)
		if !ok {
			return nil, invalidNode(path, "section name must be a string")
		}
		children, ok := elem[1].([]any)
		if !ok {
			return nil, invalidNode(path, "section %q children must be an array", name)
		}
		nodes, err := decodeElements(children, path+"/1")
		if err != nil {
			return nil, err
		}
		return &ast.Section{Name: name, Children: nodes}, nil
	case *Object:
		if elem.Len() != 1 {
			return nil, invalidNode(path, "leaf object must have exactly one key, got %d", elem.Len())
		}
		m := elem.members[0]
		return &ast.Leaf{Name: m.Name, Value: m.Value}, nil
	case map[string]any:
		if len(elem) != 1 {
			return nil, invalidNode(path, "leaf object must have exactly one key, got %d", len(elem))
		}
		for name, value := range elem {
			return &ast.Leaf{Name: name, Value: value}, nil
		}
	case ast.Node:
		if err := checkNode(elem, path); err != nil {
			return nil, err
		}
		return elem, nil
	}
	return nil, invalidNode(path, "unexpected %s", describe(elem))
}

// checkNodes validates a sequence that was built as nodes by the caller.
func checkNodes(nodes ast.Nodes, path string) error {
	for i, n := range nodes {
		if err := checkNode(n, path+"/"+strconv.Itoa(i)); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n ast.Node, path string) error {
	switch n := n.(type) {
	case *ast.Comment:
		if n != nil {
			return nil
		}
	case *ast.Leaf:
		if n != nil {
			return nil
		}
	case *ast.Section:
		if n != nil {
			return checkNodes(n.Children, path+"/1")
		}
	}
	return invalidNode(path, "nil node")
}

func invalidNode(path, format string, args ...any) error {
	return &InvalidAnnotatedJSONError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("value of type %T", v)
	}
}
