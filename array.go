package jsonscribe

import (
	"github.com/tada/jsonscribe/scribe"
	"github.com/tada/jsonstream"
)

// An ArrayNode appends elements to one open JSON array. Handles carry no
// state of their own, they are positions in the document; the handle
// returned by ThenArray or ThenObject is the handle of the enclosing
// construct, whose kind the caller names.
type ArrayNode struct {
	s *scribe.Scribe
}

// WithNull appends a null literal element and returns this handle.
func (a ArrayNode) WithNull() ArrayNode {
	a.s.Value(scribe.Null)
	return a
}

// WithTrue appends a true literal element and returns this handle.
func (a ArrayNode) WithTrue() ArrayNode {
	a.s.Value(scribe.BoolToken(true))
	return a
}

// WithFalse appends a false literal element and returns this handle.
func (a ArrayNode) WithFalse() ArrayNode {
	a.s.Value(scribe.BoolToken(false))
	return a
}

// WithBool appends a Boolean literal element and returns this handle.
func (a ArrayNode) WithBool(element bool) ArrayNode {
	a.s.Value(scribe.BoolToken(element))
	return a
}

// WithInt appends a numeric literal element and returns this handle.
func (a ArrayNode) WithInt(element int64) ArrayNode {
	a.s.Value(scribe.IntToken(element))
	return a
}

// WithUint appends a numeric literal element and returns this handle.
func (a ArrayNode) WithUint(element uint64) ArrayNode {
	a.s.Value(scribe.UintToken(element))
	return a
}

// WithFloat appends a numeric literal element and returns this handle. A
// NaN or infinite value is appended as a null literal.
func (a ArrayNode) WithFloat(element float64) ArrayNode {
	a.s.Value(scribe.FloatToken(element))
	return a
}

// WithString appends element as a double quoted, escaped string literal
// and returns this handle.
func (a ArrayNode) WithString(element string) ArrayNode {
	a.s.BeginString()
	a.s.Append(element)
	a.s.End()
	return a
}

// WithRune appends a single character string literal element and returns
// this handle.
func (a ArrayNode) WithRune(element rune) ArrayNode {
	a.s.BeginString()
	a.s.AppendRune(element)
	a.s.End()
	return a
}

// With appends element in its natural JSON form and returns this handle.
// A nil element is appended as a null literal, strings and byte slices as
// string literals, jsonstream.Streamer values through their own
// MarshalToJSON and numeric and Boolean values as literal tokens.
func (a ArrayNode) With(element interface{}) ArrayNode {
	writeValue(a.s, element)
	return a
}

// WithAll appends each of elements in its natural JSON form as With does
// and returns this handle. With no arguments it has no effect.
func (a ArrayNode) WithAll(elements ...interface{}) ArrayNode {
	for i := range elements {
		writeValue(a.s, elements[i])
	}
	return a
}

// WithEmptyArray appends an empty JSON array element and returns this
// handle.
func (a ArrayNode) WithEmptyArray() ArrayNode {
	a.s.BeginArray()
	a.s.End()
	return a
}

// WithEmptyObject appends an empty JSON object element and returns this
// handle.
func (a ArrayNode) WithEmptyObject() ArrayNode {
	a.s.BeginObject()
	a.s.End()
	return a
}

// WithJSON appends a value that streams its own JSON encoding and returns
// this handle. The Streamer must write exactly one complete JSON value.
func (a ArrayNode) WithJSON(element jsonstream.Streamer) ArrayNode {
	a.s.Inscribe(element.MarshalToJSON)
	return a
}

// Element begins a string literal element and returns a handle that
// appends characters to it. The opening quote is written immediately.
// This array handle must not be used again until the returned handle has
// been closed.
func (a ArrayNode) Element() ValueNode {
	a.s.BeginString()
	return ValueNode{s: a.s}
}

// Array begins a JSON array element and returns its handle. ThenArray on
// the returned handle closes it and returns this array's handle.
func (a ArrayNode) Array() ArrayNode {
	a.s.BeginArray()
	return ArrayNode{s: a.s}
}

// Object begins a JSON object element and returns its handle. ThenArray
// on the returned handle closes it and returns this array's handle.
func (a ArrayNode) Object() ObjectNode {
	a.s.BeginObject()
	return ObjectNode{s: a.s}
}

// ThenArray closes the array and returns the handle of the enclosing
// array. The closed handle must not be used again.
func (a ArrayNode) ThenArray() ArrayNode {
	a.s.End()
	return ArrayNode{s: a.s}
}

// ThenObject closes the array and returns the handle of the enclosing
// object. The closed handle must not be used again.
func (a ArrayNode) ThenObject() ObjectNode {
	a.s.End()
	return ObjectNode{s: a.s}
}

// Then closes the array as the outermost construct of the document and
// returns the Done marker. WriteArray and RenderArray verify that no
// context remains open once the build function returns.
func (a ArrayNode) Then() Done {
	a.s.End()
	return Done{}
}
