package ajson

import (
	"fmt"
	"iter"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Object is a JSON object that remembers the order of its members.
//
// It is the type of the data tree returned by Parse and of every object
// value decoded from array-form text. The zero value is an empty object
// ready to use.
type Object struct {
	members []Member
	index   map[string]int
}

// Member is a single name/value pair of an Object.
type Member struct {
	Name  string
	Value any
}

// NewObject returns an object holding members in the given order.
// A repeated name keeps its first position and its last value.
func NewObject(members ...Member) *Object {
	o := &Object{}
	for _, m := range members {
		o.Set(m.Name, m.Value)
	}
	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns the member names in order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for name := range o.All() {
		keys = append(keys, name)
	}
	return keys
}

// All iterates over the members in order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if o == nil {
			return
		}
		for _, m := range o.members {
			if !yield(m.Name, m.Value) {
				return
			}
		}
	}
}

// Has reports whether the object has a member called name.
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Get returns the value of the member called name.
func (o *Object) Get(name string) (any, bool) {
	if o == nil || o.index == nil {
		return nil, false
	}
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Set replaces the value of an existing member in place, or appends a new
// member after all others.
func (o *Object) Set(name string, value any) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[name]; ok {
		o.members[i].Value = value
		return
	}
	o.index[name] = len(o.members)
	o.members = append(o.members, Member{Name: name, Value: value})
}

// Delete removes the member called name and reports whether it existed.
func (o *Object) Delete(name string) bool {
	if o == nil || o.index == nil {
		return false
	}
	i, ok := o.index[name]
	if !ok {
		return false
	}
	o.members = append(o.members[:i], o.members[i+1:]...)
	delete(o.index, name)
	for j := i; j < len(o.members); j++ {
		o.index[o.members[j].Name] = j
	}
	return true
}

// Lookup follows path through nested objects and returns the value found
// at its end. An empty path returns o itself.
func (o *Object) Lookup(path ...string) (any, bool) {
	var cur any = o
	for _, name := range path {
		obj, ok := cur.(*Object)
		if !ok {
			return nil, false
		}
		if cur, ok = obj.Get(name); !ok {
			return nil, false
		}
	}
	return cur, true
}

// object returns the nested object called name, inserting an empty one
// when the member does not exist yet.
func (o *Object) object(name string) (*Object, error) {
	if v, ok := o.Get(name); ok {
		obj, ok := v.(*Object)
		if !ok {
			return nil, fmt.Errorf("key %q is already a leaf value", name)
		}
		return obj, nil
	}
	obj := &Object{}
	o.Set(name, obj)
	return obj, nil
}

// MarshalJSONTo encodes o as a JSON object, members in order.
func (o *Object) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for name, value := range o.All() {
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, value); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

// UnmarshalJSONFrom decodes a JSON object from dec into o, appending to
// any members o already has. Nested objects decode as *Object.
func (o *Object) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	if k := dec.PeekKind(); k != '{' {
		return fmt.Errorf("ajson: expected object start, but encountered %v", k)
	}
	return o.decodeMembers(dec)
}
