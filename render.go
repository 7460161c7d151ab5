package ajson

import "github.com/KimNorgaard/go-ajson/ast"

// Render rebuilds the array form of doc from its annotation tree, taking
// values from its data tree.
//
// Nodes are emitted in annotation order with their comments. A key that
// was removed from the data tree is dropped while its comments are kept.
// Keys added to the data tree after parsing follow all annotated keys of
// their scope, in data order, as leaves without comments.
func Render(doc *Document) (ast.Nodes, error) {
	switch {
	case doc == nil:
		return nil, &InvalidInputError{Reason: "cannot render a nil document"}
	case doc.Data == nil:
		return nil, &InvalidInputError{Reason: "cannot render, document has no data tree"}
	case doc.Annotations == nil:
		return nil, &InvalidInputError{Reason: "cannot render, document has no annotation tree"}
	}
	return render(doc.Annotations, doc.Data), nil
}

func render(ann *Annotation, data *Object) ast.Nodes {
	out := ast.Nodes{}
	out = appendComments(out, ann.Inner)

	seen := make(map[string]bool, len(ann.Sub))
	for _, e := range ann.Sub {
		seen[e.Key] = true
		sub := e.Annotation
		if sub == nil {
			sub = &Annotation{}
		}

		out = appendComments(out, sub.Pre)
		if v, ok := data.Get(e.Key); ok {
			obj, isObj := v.(*Object)
			if sub.Value || !isObj {
				out = append(out, &ast.Leaf{Name: e.Key, Value: v})
			} else {
				out = append(out, &ast.Section{Name: e.Key, Children: render(sub, obj)})
			}
		}
		out = appendComments(out, sub.Post)
	}

	for name, v := range data.All() {
		if !seen[name] {
			out = append(out, &ast.Leaf{Name: name, Value: v})
		}
	}
	return out
}

func appendComments(out ast.Nodes, comments []string) ast.Nodes {
	for _, c := range comments {
		out = append(out, &ast.Comment{Text: c})
	}
	return out
}
