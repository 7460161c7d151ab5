package ajson

import "github.com/KimNorgaard/go-ajson/errors"

// InvalidInputError is returned when the argument to Parse, Render or
// Stringify is not shaped as required, e.g. a root that is not an array.
type InvalidInputError = errors.InvalidInputError

// InvalidAnnotatedJSONError is returned when an element of an array-form
// sequence is not a comment, a section or a single-key leaf.
type InvalidAnnotatedJSONError = errors.InvalidAnnotatedJSONError

var errRootNotArray = &InvalidInputError{Reason: "data root must be an array"}
