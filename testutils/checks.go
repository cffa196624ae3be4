// Package testutils contains convenient testing checkers that compare a
// produced value against an expected value (or condition), like
// `CheckEqual(expected, produced, t)`.
package testutils

import (
	"reflect"
	"testing"
)

// CheckEqual checks if two values are deeply equal and calls t.Fatalf if not
func CheckEqual(expected interface{}, got interface{}, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Fatalf("Expected: %v, got %v", expected, got)
	}
}

// CheckError checks if there is an error
func CheckError(got error, t *testing.T) {
	t.Helper()
	if got == nil {
		t.Fatalf("Expected: error, got nil")
	}
}

// CheckNotError checks if error value is not nil
func CheckNotError(got error, t *testing.T) {
	t.Helper()
	if got != nil {
		t.Fatalf("Expected: no error, got %v", got)
	}
}

// CheckTrue checks if value is true
func CheckTrue(got bool, t *testing.T) {
	t.Helper()
	if !got {
		t.Fatalf("Expected: true, got %v", got)
	}
}

// CheckRendered checks that a render produced no error and emitted the
// expected JSON text
func CheckRendered(expected string, got []byte, err error, t *testing.T) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected: no error, got %v", err)
	}
	if string(got) != expected {
		t.Fatalf("Expected: %s, got %s", expected, string(got))
	}
}
