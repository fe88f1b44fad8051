package json5pp

// Manipulator is a composable delta to a RuleSet: bits to clear, bits to
// set, and an optional indentation override. Manipulators are stateless
// values; the same Manipulator may be applied to any number of RuleSets or
// Contexts. Application order is left-to-right, later manipulators winning
// on overlapping bits.
type Manipulator struct {
	set    Rule
	clear  Rule
	indent *Indent
}

// toggle builds a Manipulator that sets flag when enable is true and clears
// it otherwise.
func toggle(flag Rule, enable bool) Manipulator {
	if enable {
		return Manipulator{set: flag}
	}
	return Manipulator{clear: flag}
}

// SingleLineComment toggles acceptance of //-to-end-of-line comments.
func SingleLineComment(enable bool) Manipulator { return toggle(ruleSingleLineComment, enable) }

// MultiLineComment toggles acceptance of /* */ block comments.
func MultiLineComment(enable bool) Manipulator { return toggle(ruleMultiLineComment, enable) }

// ExplicitPlusSign toggles acceptance of a leading + on numbers.
func ExplicitPlusSign(enable bool) Manipulator { return toggle(ruleExplicitPlusSign, enable) }

// LeadingDecimalPoint toggles acceptance of numbers like .5.
func LeadingDecimalPoint(enable bool) Manipulator { return toggle(ruleLeadingDecimalPoint, enable) }

// TrailingDecimalPoint toggles acceptance of numbers like 5. with no
// fractional digits.
func TrailingDecimalPoint(enable bool) Manipulator { return toggle(ruleTrailingDecimalPoint, enable) }

// Infinity toggles the infinity literal on both parse and stringify.
func Infinity(enable bool) Manipulator { return toggle(ruleInfinity, enable) }

// NaN toggles the NaN literal on both parse and stringify.
func NaN(enable bool) Manipulator { return toggle(ruleNaN, enable) }

// Hexadecimal toggles acceptance of 0x-prefixed integer numbers.
func Hexadecimal(enable bool) Manipulator { return toggle(ruleHexadecimal, enable) }

// SingleQuote toggles acceptance of single-quoted strings.
func SingleQuote(enable bool) Manipulator { return toggle(ruleSingleQuote, enable) }

// MultiLineString toggles acceptance of backslash-continued multi-line
// strings.
func MultiLineString(enable bool) Manipulator { return toggle(ruleMultiLineString, enable) }

// TrailingComma toggles acceptance of a trailing comma in arrays and
// objects.
func TrailingComma(enable bool) Manipulator { return toggle(ruleTrailingComma, enable) }

// UnquotedKey toggles acceptance of bare identifier object keys.
func UnquotedKey(enable bool) Manipulator { return toggle(ruleUnquotedKey, enable) }

// NoIndent disables indentation, producing single-line output.
func NoIndent() Manipulator {
	return Manipulator{indent: &Indent{}}
}

// SpaceIndent indents stringified output by n spaces per nesting level.
func SpaceIndent(n int) Manipulator {
	return Manipulator{indent: &Indent{Unit: ' ', Count: n}}
}

// TabIndent indents stringified output by n tabs per nesting level.
func TabIndent(n int) Manipulator {
	return Manipulator{indent: &Indent{Unit: '\t', Count: n}}
}

// LFNewline selects "\n" as the newline token of indented output.
func LFNewline() Manipulator { return Manipulator{clear: ruleCRLFNewline} }

// CRLFNewline selects "\r\n" as the newline token of indented output.
func CRLFNewline() Manipulator { return Manipulator{set: ruleCRLFNewline} }

// Finished selects between finished parse mode (trailing non-space content
// after the top-level value is an error) and streaming mode (trailing
// content is left unconsumed for a subsequent parse).
func Finished(enable bool) Manipulator { return toggle(ruleFinished, enable) }
