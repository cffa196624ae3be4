// Package jsonscribe writes JSON documents incrementally through a fluent
// builder API. Every call appends directly to the underlying io.Writer; no
// document tree is ever built, so the characters written so far always form
// a valid prefix of a JSON document. Opening an array, object or string
// value returns a handle for the new construct, and closing a handle
// returns the handle of the enclosing construct, so a complete document can
// be a single expression:
//
//	err := jsonscribe.WriteObject(w, func(o jsonscribe.ObjectNode) jsonscribe.Done {
//		return o.Array("a").WithInt(1).WithTrue().WithString("x").ThenObject().Then()
//	})
//
// which emits {"a":[1,true,"x"]}.
//
// Handles are stateless facades over the document position: closing a
// construct with ThenArray or ThenObject yields the handle of the
// enclosing array or object, and Then closes the outermost construct,
// yielding the Done marker. The caller names the enclosing kind; choosing
// the wrong closer, using a handle after it has been closed, or using a
// handle while a child handle is still open produces invalid output. The
// package favors zero overhead over runtime type state checks: only reuse
// of a fully closed document and an unbalanced build are detected.
//
// Sink failures panic with a catch error. WriteObject, WriteArray and the
// Render functions recover the cause and also verify that the build left
// no context open; callers of the bare Object and Array entry points must
// run the build under catch.Do themselves.
package jsonscribe

import (
	"bytes"
	"io"

	"github.com/tada/catch"
	"github.com/tada/jsonscribe/scribe"
	"github.com/tada/jsonstream"
)

// Done marks a completed top level document. It has no operations; its
// only purpose is to make the terminal Then of the outermost handle yield
// a value that cannot write anything further.
type Done struct{}

// Object begins a JSON object document on w and returns its handle. The
// opening brace is written immediately. Closing or flushing w remains the
// caller's responsibility.
func Object(w io.Writer) ObjectNode {
	s := scribe.New(w)
	s.BeginObject()
	return ObjectNode{s: s}
}

// Array begins a JSON array document on w and returns its handle. The
// opening bracket is written immediately.
func Array(w io.Writer) ArrayNode {
	s := scribe.New(w)
	s.BeginArray()
	return ArrayNode{s: s}
}

// WriteObject builds a JSON object document on w by calling f and returns
// any error raised by the sink, by reuse of a closed handle or by a build
// that left contexts open.
func WriteObject(w io.Writer, f func(ObjectNode) Done) error {
	return catch.Do(func() {
		s := scribe.New(w)
		s.BeginObject()
		f(ObjectNode{s: s})
		assertBalanced(s)
	})
}

// WriteArray builds a JSON array document on w by calling f.
func WriteArray(w io.Writer, f func(ArrayNode) Done) error {
	return catch.Do(func() {
		s := scribe.New(w)
		s.BeginArray()
		f(ArrayNode{s: s})
		assertBalanced(s)
	})
}

// RenderObject builds a JSON object document in memory and returns its
// bytes.
func RenderObject(f func(ObjectNode) Done) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteObject(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderArray builds a JSON array document in memory and returns its
// bytes.
func RenderArray(f func(ArrayNode) Done) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteArray(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// assertBalanced panics with a catch error when open and close calls did
// not balance out, which means the Done returned by the build function did
// not come from closing the outermost construct.
func assertBalanced(s *scribe.Scribe) {
	if c := s.Cursor(); c != 0 {
		panic(catch.Error("jsonscribe: document left %d JSON contexts open", c))
	}
}

// writeValue appends v in its natural JSON form: nil as a null literal,
// strings and byte slices as string literals, Streamer values through
// their own MarshalToJSON and everything else as a literal token rendered
// by scribe.Token. Note that runes arrive here as int32 and are therefore
// written as numbers; use the WithRune methods for single character
// strings.
func writeValue(s *scribe.Scribe, v interface{}) {
	switch e := v.(type) {
	case string:
		s.BeginString()
		s.Append(e)
		s.End()
	case []byte:
		s.BeginString()
		s.Append(string(e))
		s.End()
	case jsonstream.Streamer:
		s.Inscribe(e.MarshalToJSON)
	default:
		s.Value(scribe.Token(v))
	}
}
