// Package scribe implements the low level JSON writing engine: a stack of
// open JSON contexts over an append-only character sink. The engine knows
// which separators and delimiters are syntactically required next and emits
// correctly escaped literals, but it does not defend against callers that
// write the wrong kind of token for the current context. The fluent handle
// types in the parent package uphold that discipline by construction.
//
// All writes panic with a catch error on sink failure. Use catch.Do at the
// boundary to recover the cause.
package scribe

import (
	"io"

	"github.com/tada/catch"
	"github.com/tada/catch/pio"
)

// kind discriminates the open JSON constructs tracked by a Scribe.
type kind byte

const (
	inArray kind = iota
	inObject
	inString
)

// frame records the emission state of one open JSON construct.
type frame struct {
	kind kind

	// nonEmpty is true once a child (element, or key of a pair) has been
	// emitted into this construct.
	nonEmpty bool

	// awaitingKey alternates on object frames: true when the next write
	// must be a key, false when a key has been written and its value is
	// still pending.
	awaitingKey bool
}

// A Scribe writes a JSON document incrementally onto an io.Writer. The
// characters written so far always form a syntactically valid prefix of a
// JSON document, provided the caller respects the context discipline
// documented on each method.
//
// A Scribe is not safe for concurrent use.
type Scribe struct {
	w     io.Writer
	stack []frame
}

// New creates a Scribe that writes to w. The Scribe never closes or
// flushes w; that remains the caller's responsibility.
func New(w io.Writer) *Scribe {
	return &Scribe{w: w}
}

// Cursor returns the current nesting depth, i.e. the number of open JSON
// constructs. Every Begin call increments it by exactly one and every End
// call decrements it by exactly one, so a caller can assert that opens and
// closes are balanced.
func (s *Scribe) Cursor() int {
	return len(s.stack)
}

// beforeValue emits the separator required before a value in the current
// context and updates the frame's emission state. Inside an object the key
// already wrote the colon, so no separator is needed but the frame flips
// back to awaiting a key.
func (s *Scribe) beforeValue() {
	if n := len(s.stack); n > 0 {
		t := &s.stack[n-1]
		switch t.kind {
		case inArray:
			if t.nonEmpty {
				pio.WriteByte(s.w, ',')
			}
		case inObject:
			t.awaitingKey = true
		}
		t.nonEmpty = true
	}
}

// BeginArray writes an opening bracket, preceded by a comma when the
// current context already holds a sibling, and pushes an array context.
func (s *Scribe) BeginArray() {
	s.beforeValue()
	pio.WriteByte(s.w, '[')
	s.stack = append(s.stack, frame{kind: inArray})
}

// BeginObject writes an opening brace, preceded by a comma when the
// current context already holds a sibling, and pushes an object context.
func (s *Scribe) BeginObject() {
	s.beforeValue()
	pio.WriteByte(s.w, '{')
	s.stack = append(s.stack, frame{kind: inObject, awaitingKey: true})
}

// BeginString writes an opening double quote, preceded by a comma when the
// current context already holds a sibling, and pushes a string value
// context. Append and AppendRune add escaped content until End writes the
// closing quote.
func (s *Scribe) BeginString() {
	s.beforeValue()
	pio.WriteByte(s.w, '"')
	s.stack = append(s.stack, frame{kind: inString})
}

// Key writes an escaped, double quoted key followed by a colon, preceded
// by a comma unless it is the first key of the object. Valid only when the
// innermost context is an object awaiting a key; the Scribe does not check
// this and writing a key out of turn produces invalid output.
func (s *Scribe) Key(key string) {
	t := &s.stack[len(s.stack)-1]
	if t.nonEmpty && t.awaitingKey {
		pio.WriteByte(s.w, ',')
	}
	t.nonEmpty = true
	t.awaitingKey = false
	pio.WriteByte(s.w, '"')
	WriteEscaped(s.w, key)
	pio.WriteString(s.w, `":`)
}

// Value writes a pre-rendered literal token such as null, true or a
// numeric rendering, preceded by the separator the current context
// requires. Tokens are produced by Token and the typed Token functions.
func (s *Scribe) Value(token string) {
	s.beforeValue()
	pio.WriteString(s.w, token)
}

// Append writes str, escaped, into the innermost context which must be a
// string value context. String content is never comma separated, so the
// literal may be built across any number of Append calls.
func (s *Scribe) Append(str string) {
	WriteEscaped(s.w, str)
}

// AppendRune writes a single escaped character into the innermost context
// which must be a string value context.
func (s *Scribe) AppendRune(r rune) {
	WriteEscapedRune(s.w, r)
}

// Inscribe writes a value that has already been encoded as JSON, preceded
// by the separator the current context requires. The function f receives
// the sink and must write exactly one complete JSON value, typically via
// a jsonstream.Streamer's MarshalToJSON.
func (s *Scribe) Inscribe(f func(io.Writer)) {
	s.beforeValue()
	f(s.w)
}

// End pops the innermost context and writes its closing delimiter. It
// panics with a catch error when no context is open, which indicates that
// an already closed handle was reused.
func (s *Scribe) End() {
	n := len(s.stack)
	if n == 0 {
		panic(catch.Error("jsonscribe: no open JSON context"))
	}
	t := s.stack[n-1]
	s.stack = s.stack[:n-1]
	switch t.kind {
	case inArray:
		pio.WriteByte(s.w, ']')
	case inObject:
		pio.WriteByte(s.w, '}')
	case inString:
		pio.WriteByte(s.w, '"')
	}
}
