package json5pp

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/kimushu/json5pp/internal"
)

// Stringifier writes Values to an output medium under a Context. Output is
// produced by a depth-first traversal; nesting depth is bounded only by the
// call stack.
type Stringifier struct {
	Context
	w *bufio.Writer
}

// NewStringifier binds a new Stringifier to w with the given rules refined
// by ms.
func NewStringifier(w io.Writer, rules RuleSet, ms ...Manipulator) *Stringifier {
	return &Stringifier{
		Context: NewContext(rules, ms...),
		w:       bufio.NewWriterSize(w, defaultBufferSize),
	}
}

// Stringify writes v followed by a flush. A nil Value stringifies as null.
// Write failures of the underlying medium surface from the flush.
func (s *Stringifier) Stringify(v *Value) error {
	s.writeValue(v, "")
	return s.w.Flush()
}

// writeValue dispatches on the active variant. indent is the cumulative
// indent of the enclosing container.
func (s *Stringifier) writeValue(v *Value, indent string) {
	if v == nil {
		s.w.WriteString("null")
		return
	}
	switch v.kind {
	case Null:
		s.w.WriteString("null")
	case Boolean:
		if v.b {
			s.w.WriteString("true")
		} else {
			s.w.WriteString("false")
		}
	case Number:
		s.writeNumber(v.n)
	case String:
		s.writeString(v.s)
	case Array:
		s.writeArray(v, indent)
	case Object:
		s.writeObject(v, indent)
	}
}

// writeNumber renders finite numbers with the shortest round-trip text.
// Non-finite numbers render as their literal only when the matching toggle
// is on and fall back to null otherwise; the fallback is lossy on purpose.
func (s *Stringifier) writeNumber(n float64) {
	switch {
	case math.IsInf(n, 0):
		if !s.rules.has(ruleInfinity) {
			s.w.WriteString("null")
			return
		}
		if n < 0 {
			s.w.WriteByte('-')
		}
		s.w.WriteString("infinity")
	case math.IsNaN(n):
		if s.rules.has(ruleNaN) {
			s.w.WriteString("NaN")
		} else {
			s.w.WriteString("null")
		}
	default:
		s.w.WriteString(strconv.FormatFloat(n, 'g', -1, 64))
	}
}

// writeString always emits a double-quoted string: named escapes for the
// characters that have one, \u00XX for the remaining control characters,
// everything else passed through byte for byte (input is assumed valid
// UTF-8 and is not re-encoded).
func (s *Stringifier) writeString(str string) {
	s.w.WriteByte('"')
	for i := 0; i < len(str); i++ {
		ch := str[i]
		switch ch {
		case '"':
			s.w.WriteString(`\"`)
		case '\\':
			s.w.WriteString(`\\`)
		case '\b':
			s.w.WriteString(`\b`)
		case '\f':
			s.w.WriteString(`\f`)
		case '\n':
			s.w.WriteString(`\n`)
		case '\r':
			s.w.WriteString(`\r`)
		case '\t':
			s.w.WriteString(`\t`)
		default:
			if ch < ' ' {
				s.w.Write(internal.AppendControlEscape(nil, ch))
			} else {
				s.w.WriteByte(ch)
			}
		}
	}
	s.w.WriteByte('"')
}

func (s *Stringifier) writeArray(v *Value, indent string) {
	if len(v.a) == 0 {
		// empty containers stay on one line regardless of indentation
		s.w.WriteString("[]")
		return
	}
	s.w.WriteByte('[')
	if s.rules.indent.Enabled() {
		inner := indent + s.rules.indent.step()
		nl := s.rules.Newline()
		for i, e := range v.a {
			if i > 0 {
				s.w.WriteByte(',')
			}
			s.w.WriteString(nl)
			s.w.WriteString(inner)
			s.writeValue(e, inner)
		}
		s.w.WriteString(nl)
		s.w.WriteString(indent)
	} else {
		for i, e := range v.a {
			if i > 0 {
				s.w.WriteByte(',')
			}
			s.writeValue(e, indent)
		}
	}
	s.w.WriteByte(']')
}

// writeObject emits entries in ascending key order, the Value's defined
// iteration order, not insertion order.
func (s *Stringifier) writeObject(v *Value, indent string) {
	if len(v.o) == 0 {
		s.w.WriteString("{}")
		return
	}
	s.w.WriteByte('{')
	keys := v.Keys()
	if s.rules.indent.Enabled() {
		inner := indent + s.rules.indent.step()
		nl := s.rules.Newline()
		for i, k := range keys {
			if i > 0 {
				s.w.WriteByte(',')
			}
			s.w.WriteString(nl)
			s.w.WriteString(inner)
			s.writeString(k)
			s.w.WriteString(": ")
			s.writeValue(v.o[k], inner)
		}
		s.w.WriteString(nl)
		s.w.WriteString(indent)
	} else {
		for i, k := range keys {
			if i > 0 {
				s.w.WriteByte(',')
			}
			s.writeString(k)
			s.w.WriteByte(':')
			s.writeValue(v.o[k], indent)
		}
	}
	s.w.WriteByte('}')
}
