package json5pp

import (
	"math"
	"testing"
)

func TestStringifyScalars(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("Literals", func(t *testing.T) {
		helper.AssertEqual("null", mustStringify(t, NewNull(), ECMA404()), "null")
		helper.AssertEqual("true", mustStringify(t, NewBoolean(true), ECMA404()), "true")
		helper.AssertEqual("false", mustStringify(t, NewBoolean(false), ECMA404()), "false")
	})

	t.Run("Numbers", func(t *testing.T) {
		helper.AssertEqual("0", mustStringify(t, NewNumber(0), ECMA404()), "zero")
		helper.AssertEqual("123", mustStringify(t, NewNumber(123), ECMA404()), "integer")
		helper.AssertEqual("-123", mustStringify(t, NewNumber(-123), ECMA404()), "negative")
		helper.AssertEqual("1.5", mustStringify(t, NewNumber(1.5), ECMA404()), "fraction")
		helper.AssertEqual("1e+21", mustStringify(t, NewNumber(1e21), ECMA404()), "large magnitude")
	})

	t.Run("NonFiniteFallsBackToNull", func(t *testing.T) {
		// lossy on purpose: without the toggle there is no legal spelling
		helper.AssertEqual("null", mustStringify(t, NewNumber(math.Inf(1)), ECMA404()), "+inf")
		helper.AssertEqual("null", mustStringify(t, NewNumber(math.Inf(-1)), ECMA404()), "-inf")
		helper.AssertEqual("null", mustStringify(t, NewNumber(math.NaN()), ECMA404()), "nan")
	})

	t.Run("NonFiniteLiterals", func(t *testing.T) {
		helper.AssertEqual("infinity", mustStringify(t, NewNumber(math.Inf(1)), JSON5()), "+inf")
		helper.AssertEqual("-infinity", mustStringify(t, NewNumber(math.Inf(-1)), JSON5()), "-inf")
		helper.AssertEqual("NaN", mustStringify(t, NewNumber(math.NaN()), JSON5()), "nan")

		// each literal has its own toggle
		helper.AssertEqual("NaN", mustStringify(t, NewNumber(math.NaN()), ECMA404(), NaN(true)), "nan only")
		helper.AssertEqual("null", mustStringify(t, NewNumber(math.Inf(1)), ECMA404(), NaN(true)), "inf stays null")
	})

	t.Run("Strings", func(t *testing.T) {
		helper.AssertEqual(`"hello"`, mustStringify(t, NewString("hello"), ECMA404()), "plain")
		helper.AssertEqual(`"a\"b\\c"`, mustStringify(t, NewString(`a"b\c`), ECMA404()), "quote and backslash")
		helper.AssertEqual(`"\b\f\n\r\t"`, mustStringify(t, NewString("\b\f\n\r\t"), ECMA404()), "named escapes")
		helper.AssertEqual(`"\u0001\u001f"`, mustStringify(t, NewString("\x01\x1f"), ECMA404()), "control escapes")
		helper.AssertEqual(`"日本語"`, mustStringify(t, NewString("日本語"), ECMA404()), "UTF-8 passthrough")
		helper.AssertEqual(`"a/b"`, mustStringify(t, NewString("a/b"), ECMA404()), "slash is not escaped")
	})
}

func TestStringifyContainersCompact(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("EmptyContainers", func(t *testing.T) {
		helper.AssertEqual("[]", mustStringify(t, NewArray(), ECMA404()), "empty array")
		helper.AssertEqual("{}", mustStringify(t, NewObject(), ECMA404()), "empty object")
		// empty containers stay compact even with indentation enabled
		helper.AssertEqual("[]", mustStringify(t, NewArray(), ECMA404(), SpaceIndent(2)), "indented empty array")
		helper.AssertEqual("{}", mustStringify(t, NewObject(), ECMA404(), SpaceIndent(2)), "indented empty object")
	})

	t.Run("Array", func(t *testing.T) {
		v := NewArray(NewNumber(1), NewString("x"), NewNull())
		helper.AssertEqual(`[1,"x",null]`, mustStringify(t, v, ECMA404()), "no inserted whitespace")
	})

	t.Run("ObjectAscendingKeys", func(t *testing.T) {
		v := NewObject(
			Entry{"zebra", NewNumber(3)},
			Entry{"apple", NewNumber(1)},
			Entry{"mango", NewNumber(2)},
		)
		helper.AssertEqual(`{"apple":1,"mango":2,"zebra":3}`, mustStringify(t, v, ECMA404()),
			"keys sorted, no space after colon")
	})

	t.Run("Nested", func(t *testing.T) {
		v := NewObject(Entry{"a", NewArray(NewArray(), NewObject(Entry{"b", NewBoolean(false)}))})
		helper.AssertEqual(`{"a":[[],{"b":false}]}`, mustStringify(t, v, ECMA404()), "nested containers")
	})

	t.Run("NilValue", func(t *testing.T) {
		helper.AssertEqual("null", mustStringify(t, nil, ECMA404()), "nil stringifies as null")
	})
}

func TestStringifyIndented(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("TwoSpaceArray", func(t *testing.T) {
		v := NewArray(NewNumber(1), NewNumber(2))
		want := "[\n  1,\n  2\n]"
		helper.AssertEqual(want, mustStringify(t, v, ECMA404(), SpaceIndent(2)), "two-space indent")
	})

	t.Run("TripleTabArray", func(t *testing.T) {
		v := NewArray(NewNumber(1), NewNumber(2))
		want := "[\n\t\t\t1,\n\t\t\t2\n]"
		helper.AssertEqual(want, mustStringify(t, v, ECMA404(), TabIndent(3)),
			"each sibling on its own line, one three-tab unit deep, closing bracket at parent level")
	})

	t.Run("ObjectColonSpace", func(t *testing.T) {
		v := NewObject(Entry{"b", NewNumber(2)}, Entry{"a", NewNumber(1)})
		want := "{\n  \"a\": 1,\n  \"b\": 2\n}"
		helper.AssertEqual(want, mustStringify(t, v, ECMA404(), SpaceIndent(2)),
			"one space after the colon when indented")
	})

	t.Run("CumulativeIndent", func(t *testing.T) {
		v := NewObject(Entry{"list", NewArray(NewNumber(1))})
		want := "{\n  \"list\": [\n    1\n  ]\n}"
		helper.AssertEqual(want, mustStringify(t, v, ECMA404(), SpaceIndent(2)),
			"child indent is parent indent plus one unit")
	})

	t.Run("CRLF", func(t *testing.T) {
		v := NewArray(NewNumber(1), NewNumber(2))
		want := "[\r\n  1,\r\n  2\r\n]"
		helper.AssertEqual(want, mustStringify(t, v, ECMA404(), SpaceIndent(2), CRLFNewline()),
			"CRLF newline token")
	})

	t.Run("NoIndentManipulatorRestoresSingleLine", func(t *testing.T) {
		v := NewArray(NewNumber(1), NewNumber(2))
		helper.AssertEqual("[1,2]", mustStringify(t, v, ECMA404(), SpaceIndent(2), NoIndent()),
			"NoIndent overrides an earlier indent")
	})
}
