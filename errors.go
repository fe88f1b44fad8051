package json5pp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Structured errors returned by this package match these
// under errors.Is.
var (
	ErrSyntax       = errors.New("JSON syntax error")
	ErrTypeMismatch = errors.New("type mismatch")
)

// SyntaxError reports the first grammar violation encountered by the
// parser. It carries the literal offending character (or the end-of-input
// marker) and the name of the production being parsed. The parse aborts at
// the first violation; there is no partial value and no error recovery.
type SyntaxError struct {
	Char    byte   // offending character; meaningless when EOF is set
	EOF     bool   // true when input ended inside the production
	Context string // production name: "number", "string", "object-key", ...
}

func (e *SyntaxError) Error() string {
	if e.EOF {
		return fmt.Sprintf("JSON syntax error: unexpected end of input in %s", e.Context)
	}
	return fmt.Sprintf("JSON syntax error: illegal character `%c' in %s", e.Char, e.Context)
}

// Is matches ErrSyntax.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// TypeMismatchError reports a Value accessor called for a variant other
// than the active one.
type TypeMismatchError struct {
	Requested Kind
	Actual    Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: requested %s but value holds %s", e.Requested, e.Actual)
}

// Is matches ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

func newTypeMismatchError(requested, actual Kind) error {
	return &TypeMismatchError{Requested: requested, Actual: actual}
}

// syntaxError builds a SyntaxError for ch as returned by the input cursor,
// where a negative value is the end-of-input marker.
func syntaxError(ch int, context string) error {
	if ch < 0 {
		return &SyntaxError{EOF: true, Context: context}
	}
	return &SyntaxError{Char: byte(ch), Context: context}
}
