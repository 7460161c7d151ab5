// Package ast defines the node types of the annotated-json array form.
//
// An array-form document is a JSON array whose elements are one of:
//
//	"free text"               a Comment
//	["name", [ ... ]]         a Section holding nested nodes
//	{"name": <any value>}     a Leaf holding exactly one value
//
// All node types marshal back to exactly that JSON shape.
package ast

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Node is an element of an array-form sequence. The set of implementations
// is closed: *Comment, *Section and *Leaf.
type Node interface {
	// String returns the compact JSON encoding of the node.
	String() string
	node()
}

// Nodes is an ordered array-form sequence.
type Nodes []Node

// MarshalJSONTo encodes ns as a JSON array.
func (ns Nodes) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	for i, n := range ns {
		if n == nil {
			return fmt.Errorf("ajson: nil node at index %d", i)
		}
		if err := json.MarshalEncode(enc, n); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndArray)
}

func (ns Nodes) String() string { return compact(ns) }

// Comment is free text kept between keyed nodes. An empty Text marks a
// deliberate blank line.
type Comment struct {
	Text string
}

func (c *Comment) node()          {}
func (c *Comment) String() string { return compact(c) }

// MarshalJSONTo encodes c as a JSON string.
func (c *Comment) MarshalJSONTo(enc *jsontext.Encoder) error {
	return enc.WriteToken(jsontext.String(c.Text))
}

// Section is a named nested scope, encoded as a [name, children] pair.
type Section struct {
	Name     string
	Children Nodes
}

func (s *Section) node()          {}
func (s *Section) String() string { return compact(s) }

// MarshalJSONTo encodes s as a two element JSON array.
func (s *Section) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String(s.Name)); err != nil {
		return err
	}
	if err := s.Children.MarshalJSONTo(enc); err != nil {
		return err
	}
	return enc.WriteToken(jsontext.EndArray)
}

// Leaf is a named terminal value, encoded as a single-member JSON object.
type Leaf struct {
	Name  string
	Value any
}

func (l *Leaf) node()          {}
func (l *Leaf) String() string { return compact(l) }

// MarshalJSONTo encodes l as a JSON object with one member.
func (l *Leaf) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String(l.Name)); err != nil {
		return err
	}
	if err := json.MarshalEncode(enc, l.Value); err != nil {
		return err
	}
	return enc.WriteToken(jsontext.EndObject)
}

func compact(v any) string {
	b, err := json.Marshal(v, json.Deterministic(true))
	if err != nil {
		return fmt.Sprintf("%%!(ajson: %v)", err)
	}
	return string(b)
}
