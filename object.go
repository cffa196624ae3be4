package jsonscribe

import (
	"github.com/tada/jsonscribe/scribe"
	"github.com/tada/jsonstream"
)

// An ObjectNode appends key value pairs to one open JSON object. Keys are
// always escaped and double quoted. Handles carry no state of their own,
// they are positions in the document; the handle returned by ThenArray or
// ThenObject is the handle of the enclosing construct, whose kind the
// caller names.
type ObjectNode struct {
	s *scribe.Scribe
}

// WithNull appends key mapped to a null literal and returns this handle.
func (o ObjectNode) WithNull(key string) ObjectNode {
	o.s.Key(key)
	o.s.Value(scribe.Null)
	return o
}

// WithTrue appends key mapped to a true literal and returns this handle.
func (o ObjectNode) WithTrue(key string) ObjectNode {
	o.s.Key(key)
	o.s.Value(scribe.BoolToken(true))
	return o
}

// WithFalse appends key mapped to a false literal and returns this handle.
func (o ObjectNode) WithFalse(key string) ObjectNode {
	o.s.Key(key)
	o.s.Value(scribe.BoolToken(false))
	return o
}

// WithBool appends key mapped to a Boolean literal and returns this
// handle.
func (o ObjectNode) WithBool(key string, value bool) ObjectNode {
	o.s.Key(key)
	o.s.Value(scribe.BoolToken(value))
	return o
}

// WithInt appends key mapped to a numeric literal and returns this handle.
func (o ObjectNode) WithInt(key string, value int64) ObjectNode {
	o.s.Key(key)
	o.s.Value(scribe.IntToken(value))
	return o
}

// WithUint appends key mapped to a numeric literal and returns this
// handle.
func (o ObjectNode) WithUint(key string, value uint64) ObjectNode {
	o.s.Key(key)
	o.s.Value(scribe.UintToken(value))
	return o
}

// WithFloat appends key mapped to a numeric literal and returns this
// handle. A NaN or infinite value is appended as a null literal.
func (o ObjectNode) WithFloat(key string, value float64) ObjectNode {
	o.s.Key(key)
	o.s.Value(scribe.FloatToken(value))
	return o
}

// WithString appends key mapped to a double quoted, escaped string
// literal and returns this handle.
func (o ObjectNode) WithString(key, value string) ObjectNode {
	o.s.Key(key)
	o.s.BeginString()
	o.s.Append(value)
	o.s.End()
	return o
}

// WithRune appends key mapped to a single character string literal and
// returns this handle.
func (o ObjectNode) WithRune(key string, value rune) ObjectNode {
	o.s.Key(key)
	o.s.BeginString()
	o.s.AppendRune(value)
	o.s.End()
	return o
}

// With appends key mapped to value in its natural JSON form, as the
// ArrayNode With does, and returns this handle.
func (o ObjectNode) With(key string, value interface{}) ObjectNode {
	o.s.Key(key)
	writeValue(o.s, value)
	return o
}

// WithEmptyArray appends key mapped to an empty JSON array and returns
// this handle.
func (o ObjectNode) WithEmptyArray(key string) ObjectNode {
	o.s.Key(key)
	o.s.BeginArray()
	o.s.End()
	return o
}

// WithEmptyObject appends key mapped to an empty JSON object and returns
// this handle.
func (o ObjectNode) WithEmptyObject(key string) ObjectNode {
	o.s.Key(key)
	o.s.BeginObject()
	o.s.End()
	return o
}

// WithJSON appends key mapped to a value that streams its own JSON
// encoding and returns this handle. The Streamer must write exactly one
// complete JSON value.
func (o ObjectNode) WithJSON(key string, value jsonstream.Streamer) ObjectNode {
	o.s.Key(key)
	o.s.Inscribe(value.MarshalToJSON)
	return o
}

// Value begins a string literal mapped to key and returns a handle that
// appends characters to it. The key, colon and opening quote are written
// immediately. This object handle must not be used again until the
// returned handle has been closed.
func (o ObjectNode) Value(key string) ValueNode {
	o.s.Key(key)
	o.s.BeginString()
	return ValueNode{s: o.s}
}

// Array begins a JSON array mapped to key and returns its handle.
// ThenObject on the returned handle closes it and returns this object's
// handle.
func (o ObjectNode) Array(key string) ArrayNode {
	o.s.Key(key)
	o.s.BeginArray()
	return ArrayNode{s: o.s}
}

// Object begins a JSON object mapped to key and returns its handle.
// ThenObject on the returned handle closes it and returns this object's
// handle.
func (o ObjectNode) Object(key string) ObjectNode {
	o.s.Key(key)
	o.s.BeginObject()
	return ObjectNode{s: o.s}
}

// ThenArray closes the object and returns the handle of the enclosing
// array. The closed handle must not be used again.
func (o ObjectNode) ThenArray() ArrayNode {
	o.s.End()
	return ArrayNode{s: o.s}
}

// ThenObject closes the object and returns the handle of the enclosing
// object. The closed handle must not be used again.
func (o ObjectNode) ThenObject() ObjectNode {
	o.s.End()
	return ObjectNode{s: o.s}
}

// Then closes the object as the outermost construct of the document and
// returns the Done marker. WriteObject and RenderObject verify that no
// context remains open once the build function returns.
func (o ObjectNode) Then() Done {
	o.s.End()
	return Done{}
}
