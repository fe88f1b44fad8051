// Package internal holds byte-level helpers shared by the json5pp parser
// and stringifier. Everything operates on single bytes: the grammar's
// significant characters are all ASCII and multi-byte UTF-8 sequences pass
// through both directions untouched.
package internal

// IsDigit reports whether ch is an ASCII decimal digit. ch follows the
// cursor convention: a byte value, or negative at end of input.
func IsDigit(ch int) bool {
	return ch >= '0' && ch <= '9'
}

// DigitValue returns the numeric value of a decimal digit.
func DigitValue(ch int) int {
	return ch - '0'
}

// HexDigitValue returns the numeric value of a hexadecimal digit, or -1
// when ch is not one.
func HexDigitValue(ch int) int {
	switch {
	case IsDigit(ch):
		return DigitValue(ch)
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	default:
		return -1
	}
}

// IsAlpha reports whether ch is an ASCII letter.
func IsAlpha(ch int) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// IsIdentStart reports whether ch may start an unquoted object key.
func IsIdentStart(ch int) bool {
	return ch == '_' || ch == '$' || IsAlpha(ch)
}

// AppendCodeUnit appends the UTF-8 encoding of one 16-bit code unit, as
// decoded from a \uXXXX escape. Units are encoded independently in 1 to 3
// bytes; surrogate pairs are not assembled, so codepoints above U+FFFF
// written as pairs do not decode to a single 4-byte sequence.
func AppendCodeUnit(dst []byte, code uint16) []byte {
	switch {
	case code < 0x80:
		return append(dst, byte(code))
	case code < 0x800:
		return append(dst, byte(0xc0|code>>6), byte(0x80|code&0x3f))
	default:
		return append(dst, byte(0xe0|code>>12), byte(0x80|code>>6&0x3f), byte(0x80|code&0x3f))
	}
}

const hexDigits = "0123456789abcdef"

// AppendControlEscape appends the \u00XX escape for a control character
// that has no single-letter escape.
func AppendControlEscape(dst []byte, ch byte) []byte {
	return append(dst, '\\', 'u', '0', '0', hexDigits[ch>>4], hexDigits[ch&0xf])
}
