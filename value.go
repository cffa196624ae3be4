package jsonscribe

import (
	"github.com/tada/jsonscribe/scribe"
)

// A ValueNode appends characters to one open string literal. Content is
// escaped as it is written and the literal may be built across any number
// of Append calls before ThenArray or ThenObject writes the closing quote
// and returns the handle of the enclosing construct.
type ValueNode struct {
	s *scribe.Scribe
}

// Append appends the escaped characters of str to the literal and returns
// this handle.
func (v ValueNode) Append(str string) ValueNode {
	v.s.Append(str)
	return v
}

// AppendRune appends one escaped character to the literal and returns
// this handle.
func (v ValueNode) AppendRune(r rune) ValueNode {
	v.s.AppendRune(r)
	return v
}

// ThenArray closes the string literal and returns the handle of the
// enclosing array. The closed handle must not be used again.
func (v ValueNode) ThenArray() ArrayNode {
	v.s.End()
	return ArrayNode{s: v.s}
}

// ThenObject closes the string literal and returns the handle of the
// enclosing object. The closed handle must not be used again.
func (v ValueNode) ThenObject() ObjectNode {
	v.s.End()
	return ObjectNode{s: v.s}
}
