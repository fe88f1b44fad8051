package json5pp

import (
	"math"
	"sort"
)

// Kind identifies the active variant of a Value.
type Kind uint8

const (
	Null Kind = iota
	Boolean
	Number
	String
	Array
	Object
)

// String returns the lower-case variant name, used in error messages.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a dynamic JSON value. Exactly one variant is active at any time;
// the Set* methods switch the active variant and drop the previous payload.
// The zero Value is Null.
//
// Array elements and Object entries are owned by their container: Clone
// produces a fully independent deep copy and no parent back-references
// exist, so the value graph is always a tree.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	a    []*Value
	o    map[string]*Value
}

// Entry is one key-value pair for NewObject.
type Entry struct {
	Key   string
	Value *Value
}

// NewNull returns a Value holding the null variant.
func NewNull() *Value { return &Value{} }

// NewBoolean returns a Value holding a boolean.
func NewBoolean(b bool) *Value { return &Value{kind: Boolean, b: b} }

// NewNumber returns a Value holding a number.
func NewNumber(n float64) *Value { return &Value{kind: Number, n: n} }

// NewString returns a Value holding a string.
func NewString(s string) *Value { return &Value{kind: String, s: s} }

// NewArray returns an Array Value built from the given elements in order.
// Nil elements are stored as null values.
func NewArray(elems ...*Value) *Value {
	a := make([]*Value, 0, len(elems))
	for _, e := range elems {
		if e == nil {
			e = NewNull()
		}
		a = append(a, e)
	}
	return &Value{kind: Array, a: a}
}

// NewObject returns an Object Value built from the given entries. Duplicate
// keys follow last-write-wins.
func NewObject(entries ...Entry) *Value {
	o := make(map[string]*Value, len(entries))
	for _, e := range entries {
		v := e.Value
		if v == nil {
			v = NewNull()
		}
		o[e.Key] = v
	}
	return &Value{kind: Object, o: o}
}

// Kind reports the active variant.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool    { return v.kind == Null }
func (v *Value) IsBoolean() bool { return v.kind == Boolean }
func (v *Value) IsNumber() bool  { return v.kind == Number }
func (v *Value) IsString() bool  { return v.kind == String }
func (v *Value) IsArray() bool   { return v.kind == Array }
func (v *Value) IsObject() bool  { return v.kind == Object }

// AsBoolean returns the boolean payload, or ErrTypeMismatch if the active
// variant is not Boolean.
func (v *Value) AsBoolean() (bool, error) {
	if v.kind != Boolean {
		return false, newTypeMismatchError(Boolean, v.kind)
	}
	return v.b, nil
}

// AsNumber returns the numeric payload.
func (v *Value) AsNumber() (float64, error) {
	if v.kind != Number {
		return 0, newTypeMismatchError(Number, v.kind)
	}
	return v.n, nil
}

// AsInt returns the numeric payload truncated toward zero.
func (v *Value) AsInt() (int, error) {
	if v.kind != Number {
		return 0, newTypeMismatchError(Number, v.kind)
	}
	return int(v.n), nil
}

// AsString returns the string payload.
func (v *Value) AsString() (string, error) {
	if v.kind != String {
		return "", newTypeMismatchError(String, v.kind)
	}
	return v.s, nil
}

// AsArray returns the element slice. The slice is shared with the Value;
// callers may mutate elements in place.
func (v *Value) AsArray() ([]*Value, error) {
	if v.kind != Array {
		return nil, newTypeMismatchError(Array, v.kind)
	}
	return v.a, nil
}

// AsObject returns the entry map. The map is shared with the Value. Use Keys
// for the defined (ascending) iteration order.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.kind != Object {
		return nil, newTypeMismatchError(Object, v.kind)
	}
	return v.o, nil
}

// SetNull switches the active variant to Null, dropping any payload.
func (v *Value) SetNull() {
	*v = Value{}
}

// SetBoolean switches the active variant to Boolean.
func (v *Value) SetBoolean(b bool) {
	*v = Value{kind: Boolean, b: b}
}

// SetNumber switches the active variant to Number.
func (v *Value) SetNumber(n float64) {
	*v = Value{kind: Number, n: n}
}

// SetString switches the active variant to String.
func (v *Value) SetString(s string) {
	*v = Value{kind: String, s: s}
}

// SetArray switches the active variant to an empty Array.
func (v *Value) SetArray() {
	*v = Value{kind: Array, a: []*Value{}}
}

// SetObject switches the active variant to an empty Object.
func (v *Value) SetObject() {
	*v = Value{kind: Object, o: map[string]*Value{}}
}

// Append adds an element to an Array value.
func (v *Value) Append(elem *Value) error {
	if v.kind != Array {
		return newTypeMismatchError(Array, v.kind)
	}
	if elem == nil {
		elem = NewNull()
	}
	v.a = append(v.a, elem)
	return nil
}

// Set stores an entry in an Object value, overwriting any previous entry
// with the same key.
func (v *Value) Set(key string, val *Value) error {
	if v.kind != Object {
		return newTypeMismatchError(Object, v.kind)
	}
	if val == nil {
		val = NewNull()
	}
	v.o[key] = val
	return nil
}

// Get returns the entry for key in an Object value.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != Object {
		return nil, false
	}
	val, ok := v.o[key]
	return val, ok
}

// Len returns the element count of an Array or the entry count of an
// Object, and 0 for every other variant.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.a)
	case Object:
		return len(v.o)
	default:
		return 0
	}
}

// Keys returns the Object keys in ascending order, the iteration order used
// by the stringifier. It returns nil for non-Object values.
func (v *Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	keys := make([]string, 0, len(v.o))
	for k := range v.o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a fully independent deep copy.
func (v *Value) Clone() *Value {
	c := &Value{kind: v.kind, b: v.b, n: v.n, s: v.s}
	switch v.kind {
	case Array:
		c.a = make([]*Value, len(v.a))
		for i, e := range v.a {
			c.a[i] = e.Clone()
		}
	case Object:
		c.o = make(map[string]*Value, len(v.o))
		for k, e := range v.o {
			c.o[k] = e.Clone()
		}
	}
	return c
}

// Equals reports deep structural equality. Two NaN numbers compare equal so
// that round-trips through the NaN literal remain comparable.
func (v *Value) Equals(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Boolean:
		return v.b == other.b
	case Number:
		if math.IsNaN(v.n) && math.IsNaN(other.n) {
			return true
		}
		return v.n == other.n
	case String:
		return v.s == other.s
	case Array:
		if len(v.a) != len(other.a) {
			return false
		}
		for i, e := range v.a {
			if !e.Equals(other.a[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.o) != len(other.o) {
			return false
		}
		for k, e := range v.o {
			oe, ok := other.o[k]
			if !ok || !e.Equals(oe) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
