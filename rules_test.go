package json5pp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	t.Run("ECMA404RejectsExtensions", func(t *testing.T) {
		for _, input := range []string{
			`[1,2,]`,          // trailing comma
			`// comment`,      // single line comment
			`/* comment */ 1`, // multi line comment
			`{a:1}`,           // unquoted key
			`'single'`,        // single quote
			`0x10`,            // hexadecimal
			`NaN`,             // NaN literal
			`infinity`,        // infinity literal
			`+1`,              // explicit plus
			`.5`,              // leading decimal point
			`5.`,              // trailing decimal point
			"\"a\\\nb\"",      // multi-line string
		} {
			_, err := ParseString(input, ECMA404())
			require.Error(t, err, "input %q must be rejected under ecma404", input)
			assert.ErrorIs(t, err, ErrSyntax, "input %q", input)
		}
	})

	t.Run("JSON5AcceptsExtensions", func(t *testing.T) {
		for _, input := range []string{
			`[1,2,]`,
			`/* comment */ 1`,
			`{a:1}`,
			`'single'`,
			`0x10`,
			`NaN`,
			`infinity`,
			`+1`,
			`.5`,
			`5.`,
			"\"a\\\nb\"",
		} {
			_, err := ParseString(input, JSON5())
			assert.NoError(t, err, "input %q must be accepted under json5", input)
		}
	})

	t.Run("PresetsShareFormattingDefaults", func(t *testing.T) {
		for _, rules := range []RuleSet{ECMA404(), JSON5()} {
			assert.False(t, rules.Indent().Enabled(), "presets start without indentation")
			assert.Equal(t, "\n", rules.Newline(), "presets default to LF")
			assert.True(t, rules.Finished(), "presets default to finished parse mode")
		}
	})
}

func TestManipulatorNonInterference(t *testing.T) {
	// toggling one manipulator touches exactly its own bit
	toggles := map[Rule]func(bool) Manipulator{
		ruleSingleLineComment:    SingleLineComment,
		ruleMultiLineComment:     MultiLineComment,
		ruleExplicitPlusSign:     ExplicitPlusSign,
		ruleLeadingDecimalPoint:  LeadingDecimalPoint,
		ruleTrailingDecimalPoint: TrailingDecimalPoint,
		ruleInfinity:             Infinity,
		ruleNaN:                  NaN,
		ruleHexadecimal:          Hexadecimal,
		ruleSingleQuote:          SingleQuote,
		ruleMultiLineString:      MultiLineString,
		ruleTrailingComma:        TrailingComma,
		ruleUnquotedKey:          UnquotedKey,
		ruleFinished:             Finished,
	}
	for _, base := range []RuleSet{ECMA404(), JSON5()} {
		for bit, toggle := range toggles {
			on := base.Apply(toggle(true))
			require.Equal(t, base.flags|bit, on.flags, "enabling must set only bit %#x", bit)
			off := base.Apply(toggle(false))
			require.Equal(t, base.flags&^bit, off.flags, "disabling must clear only bit %#x", bit)
			require.Equal(t, base.indent, on.indent, "grammar toggles must not touch the indent")
		}
	}
}

func TestManipulatorFold(t *testing.T) {
	t.Run("LaterOverridesEarlier", func(t *testing.T) {
		rules := ECMA404().Apply(TrailingComma(true), TrailingComma(false))
		assert.Equal(t, ECMA404(), rules, "set-then-clear should cancel out")

		rules = JSON5().Apply(TrailingComma(false), TrailingComma(true))
		assert.Equal(t, JSON5(), rules, "clear-then-set should cancel out")
	})

	t.Run("SingleBitBehavior", func(t *testing.T) {
		rules := ECMA404().Apply(TrailingComma(true))
		_, err := ParseString(`[1,2,]`, rules)
		assert.NoError(t, err, "trailing comma enabled")
		_, err = ParseString(`// c`, rules)
		assert.Error(t, err, "other toggles unchanged")
	})

	t.Run("IndentOverride", func(t *testing.T) {
		rules := ECMA404().Apply(SpaceIndent(2), TabIndent(1))
		assert.Equal(t, Indent{Unit: '\t', Count: 1}, rules.Indent(), "last indent wins")

		rules = rules.Apply(NoIndent())
		assert.False(t, rules.Indent().Enabled(), "NoIndent disables indentation")

		// manipulators without an indent override leave it alone
		rules = ECMA404().Apply(SpaceIndent(4), TrailingComma(true))
		assert.Equal(t, Indent{Unit: ' ', Count: 4}, rules.Indent(), "indent survives unrelated toggles")
	})

	t.Run("Newline", func(t *testing.T) {
		assert.Equal(t, "\r\n", ECMA404().Apply(CRLFNewline()).Newline())
		assert.Equal(t, "\n", ECMA404().Apply(CRLFNewline(), LFNewline()).Newline())
	})

	t.Run("Reusable", func(t *testing.T) {
		// a Manipulator is stateless and may refine any number of RuleSets
		m := TrailingComma(true)
		r1 := ECMA404().Apply(m)
		r2 := ECMA404().Apply(m)
		assert.Equal(t, r1, r2)
	})
}

func TestContextAccumulation(t *testing.T) {
	ctx := NewContext(ECMA404(), TrailingComma(true))
	ctx.Apply(SingleLineComment(true))
	rules := ctx.Rules()
	assert.Equal(t, ECMA404().Apply(TrailingComma(true), SingleLineComment(true)), rules)
}
