package json5pp

import "strings"

// Rule is a bit set of grammar and mode toggles. The twelve grammar toggles
// plus the newline-style and finished-parse bits live in one word so that a
// Manipulator can address any of them with a set mask and a clear mask.
type Rule uint16

const (
	// Grammar toggles. ECMA404 clears all of them, JSON5 sets all of them;
	// every other combination is equally valid.
	ruleSingleLineComment Rule = 1 << iota
	ruleMultiLineComment
	ruleExplicitPlusSign
	ruleLeadingDecimalPoint
	ruleTrailingDecimalPoint
	ruleInfinity
	ruleNaN
	ruleHexadecimal
	ruleSingleQuote
	ruleMultiLineString
	ruleTrailingComma
	ruleUnquotedKey

	// Formatting and parse-mode bits.
	ruleCRLFNewline
	ruleFinished

	ruleGrammarMask = ruleUnquotedKey<<1 - 1
)

// Indent describes the indentation of stringified output: Count repetitions
// of Unit per nesting level. The zero Indent disables indentation.
type Indent struct {
	Unit  byte // ' ' or '\t'
	Count int
}

// Enabled reports whether this Indent produces any indentation.
func (i Indent) Enabled() bool { return i.Count > 0 && i.Unit != 0 }

// step returns one level's worth of indent characters.
func (i Indent) step() string {
	if !i.Enabled() {
		return ""
	}
	return strings.Repeat(string(i.Unit), i.Count)
}

// RuleSet is the complete configuration governing one parse or stringify
// operation: the Rule bit word plus the indentation spec. RuleSets are
// treated as immutable values; Apply returns a refined copy.
type RuleSet struct {
	flags  Rule
	indent Indent
}

// ECMA404 returns the strict JSON preset: all twelve grammar toggles off,
// no indentation, LF newlines, finished parse mode.
func ECMA404() RuleSet {
	return RuleSet{flags: ruleFinished}
}

// JSON5 returns the JSON5 preset: all twelve grammar toggles on, no
// indentation, LF newlines, finished parse mode.
func JSON5() RuleSet {
	return RuleSet{flags: ruleGrammarMask | ruleFinished}
}

// Apply folds the manipulators over the RuleSet left to right and returns
// the result. Later manipulators override earlier ones on conflicting bits.
func (r RuleSet) Apply(ms ...Manipulator) RuleSet {
	for _, m := range ms {
		r.flags &^= m.clear
		r.flags |= m.set
		if m.indent != nil {
			r.indent = *m.indent
		}
	}
	return r
}

func (r RuleSet) has(flag Rule) bool { return r.flags&flag != 0 }

// Indent returns the current indentation spec.
func (r RuleSet) Indent() Indent { return r.indent }

// Newline returns the configured newline token ("\n" or "\r\n"). It is only
// written when indentation is enabled.
func (r RuleSet) Newline() string {
	if r.has(ruleCRLFNewline) {
		return "\r\n"
	}
	return "\n"
}

// Finished reports whether the parser requires end of input after the
// top-level value.
func (r RuleSet) Finished() bool { return r.has(ruleFinished) }
