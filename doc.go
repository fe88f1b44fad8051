// Package json5pp parses strict JSON (ECMA-404) or JSON5 text into a dynamic
// Value and stringifies a Value back to text, with the accepted grammar and
// the output formatting controlled by a composable RuleSet.
//
// The package uses an internal package for implementation details:
//
//   - internal: byte classification and escape-decoding helpers shared by
//     the parser and the stringifier
//
// # Basic Usage
//
// Parse with one of the two standard presets:
//
//	v, err := json5pp.ParseString(`{"a": 123}`, json5pp.ECMA404())
//	v, err := json5pp.ParseString(`{a: 123, /* comment */}`, json5pp.JSON5())
//
// Stringify back to text:
//
//	s, err := json5pp.Stringify(v, json5pp.ECMA404())
//	s, err := json5pp.Stringify(v, json5pp.JSON5(), json5pp.SpaceIndent(2))
//
// # Rule composition
//
// The twelve grammar toggles, the indentation and newline settings, and the
// finished-parse mode are independent axes. A RuleSet is refined by folding
// Manipulators over it, later manipulators overriding earlier ones:
//
//	rules := json5pp.ECMA404().Apply(
//		json5pp.TrailingComma(true),
//		json5pp.SingleLineComment(true),
//	)
//
// Any combination is legal; the presets are just the two corners of the
// space (all toggles off, all toggles on).
//
// # Errors
//
// Parsing fails with *SyntaxError at the first grammar violation, carrying
// the offending character (or an end-of-input marker) and the production
// being parsed. Value accessors fail with *TypeMismatchError when the
// requested variant is not the active one. Both match their sentinels
// (ErrSyntax, ErrTypeMismatch) under errors.Is.
//
// # Concurrency
//
// Parser and Stringifier run synchronously with no shared state between
// invocations; concurrent use on distinct inputs, outputs and Values is safe
// without locking. A single Value is not safe for concurrent mutation.
package json5pp
