package scribe

import (
	"io"
	"unicode/utf8"

	"github.com/tada/catch/pio"
)

const hexDigits = "0123456789abcdef"

// WriteEscaped writes s onto w using JSON string escaping: '"' and '\'
// are preceded by a backslash, the common control characters use their two
// character backslash forms and the remaining control characters below
// 0x20 are written as a six character \u00XX sequence. Escaping is done in
// a single streaming pass, so literal content may arrive incrementally.
//
// If an error occurs the function panics with a catch error
func WriteEscaped(w io.Writer, s string) {
	for _, r := range s {
		WriteEscapedRune(w, r)
	}
}

// WriteEscapedRune writes the JSON string escaped form of r onto w.
//
// If an error occurs the function panics with a catch error
func WriteEscapedRune(w io.Writer, r rune) {
	switch r {
	case '"':
		pio.WriteString(w, `\"`)
	case '\\':
		pio.WriteString(w, `\\`)
	case '\b':
		pio.WriteString(w, `\b`)
	case '\f':
		pio.WriteString(w, `\f`)
	case '\n':
		pio.WriteString(w, `\n`)
	case '\r':
		pio.WriteString(w, `\r`)
	case '\t':
		pio.WriteString(w, `\t`)
	default:
		switch {
		case r >= 0x20:
			pio.WriteString(w, string(r))
		case r >= 0:
			pio.WriteString(w, `\u00`)
			pio.WriteByte(w, hexDigits[r>>4])
			pio.WriteByte(w, hexDigits[r&0xf])
		default:
			// invalid runes coalesce to the replacement character, as
			// string conversion does for runes beyond the Unicode range
			pio.WriteString(w, string(utf8.RuneError))
		}
	}
}
