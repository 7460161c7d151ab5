/*
Package ajson reads and writes annotated-json, a JSON array format for
configuration files that carries its own comments.

An annotated-json document is a JSON array. Plain strings in it are
comments, two element [name, children] arrays are named sections, and
single-key objects are values:

	[
	  "Settings for the demo service",
	  {"name": "demo"},
	  ["server", [
	    "address to listen on",
	    {"port": 8080}
	  ]]
	]

Parse splits such a document into two trees. Document.Data is an ordered
Object holding only the values ({"name": "demo", "server": {"port": 8080}}).
Document.Annotations records where every comment belongs and whether each
key came from a section or a value.

1. Round-tripping a file

Stringify(Parse(text)) reproduces text byte for byte when text was itself
written by Stringify:

	doc, err := ajson.Parse(input)
	if err != nil {
		// handle error
	}
	output, err := ajson.Stringify(doc)
	// output == input

2. Editing values while keeping comments

The data tree can be changed before writing the document back. Keys that
are deleted disappear from the output while their comments stay; keys that
are added are written after the existing ones without comments:

	server, _ := doc.Data.Lookup("server")
	server.(*ajson.Object).Set("host", "0.0.0.0")
	doc.Data.Delete("name")
	output, err := ajson.Stringify(doc)

Render returns the array form as ast.Nodes instead of text, and Unmarshal
decodes only the data tree into a Go value.
*/
package ajson
