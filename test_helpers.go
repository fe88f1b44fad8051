package json5pp

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// TestHelper provides assertion utilities for grammar tests.
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := "Values are not equal"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s\nExpected: %v (%T)\nActual: %v (%T)", msg, expected, expected, actual, actual)
	}
}

// AssertNoError checks that error is nil
func (h *TestHelper) AssertNoError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err != nil {
		msg := "Expected no error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertError checks that error is not nil
func (h *TestHelper) AssertError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		msg := "Expected an error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got nil", msg)
	}
}

// AssertSyntaxError checks that err is a *SyntaxError on the given
// production, offending on the given character.
func (h *TestHelper) AssertSyntaxError(err error, char byte, context string) {
	h.t.Helper()
	var se *SyntaxError
	if !errors.As(err, &se) {
		h.t.Errorf("Expected a *SyntaxError, got: %v", err)
		return
	}
	if se.EOF {
		h.t.Errorf("Expected error at character %q, got end-of-input error in %s", char, se.Context)
		return
	}
	if se.Char != char || se.Context != context {
		h.t.Errorf("Expected error at %q in %s, got %q in %s", char, context, se.Char, se.Context)
	}
}

// AssertSyntaxErrorEOF checks that err is a *SyntaxError at end of input.
func (h *TestHelper) AssertSyntaxErrorEOF(err error, context string) {
	h.t.Helper()
	var se *SyntaxError
	if !errors.As(err, &se) {
		h.t.Errorf("Expected a *SyntaxError, got: %v", err)
		return
	}
	if !se.EOF || se.Context != context {
		h.t.Errorf("Expected end-of-input error in %s, got: %v", context, err)
	}
}

// mustParse parses s and fails the test on error.
func mustParse(t *testing.T, s string, rules RuleSet, ms ...Manipulator) *Value {
	t.Helper()
	v, err := ParseString(s, rules, ms...)
	if err != nil {
		t.Fatalf("ParseString(%q) failed: %v", s, err)
	}
	return v
}

// mustStringify stringifies v and fails the test on error.
func mustStringify(t *testing.T, v *Value, rules RuleSet, ms ...Manipulator) string {
	t.Helper()
	s, err := Stringify(v, rules, ms...)
	if err != nil {
		t.Fatalf("Stringify failed: %v", err)
	}
	return s
}
