package errors

// InvalidInputError reports a top-level argument that does not have the
// expected envelope: a root that is not an array, or a document missing
// its data or annotation tree.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "ajson: invalid input: " + e.Reason
}

// InvalidAnnotatedJSONError reports an array-form element that is neither
// a comment string, a [name, children] section nor a single-key leaf object.
//
// Path locates the element by array indices from the root, e.g. "/3/1/0".
// It is empty when the location is unknown.
type InvalidAnnotatedJSONError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidAnnotatedJSONError) Error() string {
	msg := "ajson: invalid annotated-json data"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidAnnotatedJSONError) Unwrap() error { return e.Err }
