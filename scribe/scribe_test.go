package scribe_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"unicode/utf8"

	"github.com/tada/catch"
	"github.com/tada/catch/pio"
	"github.com/tada/jsonscribe/scribe"
	"github.com/tada/jsonscribe/testutils"
)

func TestCursor_balanced(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	testutils.CheckEqual(0, s.Cursor(), t)
	s.BeginArray()
	testutils.CheckEqual(1, s.Cursor(), t)
	s.BeginObject()
	testutils.CheckEqual(2, s.Cursor(), t)
	s.Key("k")
	s.BeginString()
	testutils.CheckEqual(3, s.Cursor(), t)
	s.End()
	testutils.CheckEqual(2, s.Cursor(), t)
	s.End()
	s.End()
	testutils.CheckEqual(0, s.Cursor(), t)
	testutils.CheckEqual(`[{"k":""}]`, w.String(), t)
}

func TestArray_separators(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginArray()
	s.Value("1")
	s.Value("2")
	s.Value("3")
	s.End()
	testutils.CheckEqual("[1,2,3]", w.String(), t)
}

func TestObject_separators(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginObject()
	s.Key("a")
	s.Value("1")
	s.Key("b")
	s.Value("true")
	s.Key("c")
	s.BeginString()
	s.Append("x")
	s.End()
	s.End()
	testutils.CheckEqual(`{"a":1,"b":true,"c":"x"}`, w.String(), t)
}

func TestNested_separators(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginArray()
	s.BeginObject()
	s.End()
	s.BeginArray()
	s.Value("null")
	s.End()
	s.BeginString()
	s.End()
	s.End()
	testutils.CheckEqual(`[{},[null],""]`, w.String(), t)
}

func TestEnd_noContext(t *testing.T) {
	w := bytes.Buffer{}
	err := catch.Do(func() {
		s := scribe.New(&w)
		s.BeginArray()
		s.End()
		s.End()
	})
	testutils.CheckError(err, t)
	// nothing was emitted after the misuse was detected
	testutils.CheckEqual("[]", w.String(), t)
}

func TestAppend_incremental(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginString()
	s.Append("one ")
	s.Append("two")
	s.AppendRune(' ')
	s.AppendRune('⌘')
	s.End()
	testutils.CheckEqual(`"one two ⌘"`, w.String(), t)
}

func TestInscribe(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginArray()
	s.Value("1")
	s.Inscribe(func(w io.Writer) {
		pio.WriteString(w, `{"pre":"encoded"}`)
	})
	s.Value("2")
	s.End()
	testutils.CheckEqual(`[1,{"pre":"encoded"},2]`, w.String(), t)
}

func TestEscape_forms(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginString()
	s.Append("\"\\\b\f\n\r\t\x00\x1f")
	s.End()
	testutils.CheckEqual(`"\"\\\b\f\n\r\t\u0000\u001f"`, w.String(), t)
}

func TestAppendRune_invalid(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginString()
	s.AppendRune(-1)
	s.AppendRune(utf8.MaxRune + 1)
	s.End()
	testutils.CheckEqual(`"`+string(utf8.RuneError)+string(utf8.RuneError)+`"`, w.String(), t)
}

func TestEscape_roundTrip(t *testing.T) {
	const original = "pre \"quoted\"\tand\\escaped\nwith \x01 control and ⌘"
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginString()
	s.Append(original)
	s.End()
	var parsed string
	testutils.CheckNotError(json.Unmarshal(w.Bytes(), &parsed), t)
	testutils.CheckEqual(original, parsed, t)
}

func TestKey_escaped(t *testing.T) {
	w := bytes.Buffer{}
	s := scribe.New(&w)
	s.BeginObject()
	s.Key("a\"b")
	s.Value("null")
	s.End()
	testutils.CheckEqual(`{"a\"b":null}`, w.String(), t)
}

type badWriter int

func (badWriter) Write([]byte) (int, error) {
	return 0, errors.New("bad write")
}

func TestWrite_sinkError(t *testing.T) {
	err := catch.Do(func() {
		s := scribe.New(badWriter(0))
		s.BeginArray()
	})
	testutils.CheckError(err, t)
}
