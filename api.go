package json5pp

import (
	"io"
	"strings"
)

// Parse reads a single top-level value from r under rules refined by ms.
// With the finished bit set (the preset default) any non-space content
// after the value is a SyntaxError; use Finished(false) or NewParser for
// sequential reads from one medium.
func Parse(r io.Reader, rules RuleSet, ms ...Manipulator) (*Value, error) {
	return NewParser(r, rules, ms...).Parse()
}

// ParseString parses s as a single top-level value.
func ParseString(s string, rules RuleSet, ms ...Manipulator) (*Value, error) {
	return Parse(strings.NewReader(s), rules, ms...)
}

// StringifyTo writes the text rendering of v to w under rules refined by
// ms.
func StringifyTo(w io.Writer, v *Value, rules RuleSet, ms ...Manipulator) error {
	return NewStringifier(w, rules, ms...).Stringify(v)
}

// Stringify returns the text rendering of v under rules refined by ms.
// Without an indent manipulator the output is a single line.
func Stringify(v *Value, rules RuleSet, ms ...Manipulator) (string, error) {
	var sb strings.Builder
	if err := StringifyTo(&sb, v, rules, ms...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
