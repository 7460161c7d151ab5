package ajson

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Annotation is a node of the annotation tree: the comments and layout of
// one key of the data tree. The tree is built by Parse and read by Render;
// callers are not expected to modify it.
type Annotation struct {
	// Pre holds the comments placed immediately before this node.
	Pre []string `json:"pre"`
	// Post holds the comments following this node when it is the last
	// keyed node of its scope.
	Post []string `json:"post,omitempty"`
	// Inner holds the comments of a scope that contains no keyed node.
	Inner []string `json:"inner,omitempty"`
	// Value is set when the node was parsed from a leaf rather than a section.
	Value bool `json:"value,omitzero"`
	// Sub lists the child nodes in the order they were first seen.
	Sub []AnnotationEntry `json:"sub,omitempty"`
}

// AnnotationEntry is a keyed child of an Annotation. It encodes as a
// [key, annotation] pair.
type AnnotationEntry struct {
	Key        string
	Annotation *Annotation
}

func newAnnotation() *Annotation {
	return &Annotation{Pre: []string{}}
}

// Child returns the first child node stored under key, or nil.
func (a *Annotation) Child(key string) *Annotation {
	if a == nil {
		return nil
	}
	for _, e := range a.Sub {
		if e.Key == key {
			return e.Annotation
		}
	}
	return nil
}

// Lookup follows path through the tree and returns the node at its end,
// or nil when a segment is missing. An empty path returns a itself.
func (a *Annotation) Lookup(path ...string) *Annotation {
	cur := a
	for _, key := range path {
		if cur = cur.Child(key); cur == nil {
			return nil
		}
	}
	return cur
}

// child returns the child node stored under key, appending a new one when
// there is none.
func (a *Annotation) child(key string) *Annotation {
	if c := a.Child(key); c != nil {
		return c
	}
	c := newAnnotation()
	a.Sub = append(a.Sub, AnnotationEntry{Key: key, Annotation: c})
	return c
}

// MarshalJSONTo encodes e as a two element JSON array.
func (e AnnotationEntry) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
		return err
	}
	if err := json.MarshalEncode(enc, e.Annotation); err != nil {
		return err
	}
	return enc.WriteToken(jsontext.EndArray)
}

// UnmarshalJSONFrom decodes a [key, annotation] pair from dec into e.
func (e *AnnotationEntry) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	if k := dec.PeekKind(); k != '[' {
		return fmt.Errorf("ajson: expected annotation entry array, but encountered %v", k)
	}
	if _, err := dec.ReadToken(); err != nil {
		return err
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	if tok.Kind() != '"' {
		return fmt.Errorf("ajson: expected annotation entry key, but encountered %v", tok.Kind())
	}
	e.Key = tok.String()
	e.Annotation = newAnnotation()
	if err := json.UnmarshalDecode(dec, e.Annotation); err != nil {
		return err
	}
	if tok, err = dec.ReadToken(); err != nil {
		return err
	}
	if tok.Kind() != ']' {
		return fmt.Errorf("ajson: annotation entry %q has more than two elements", e.Key)
	}
	return nil
}
