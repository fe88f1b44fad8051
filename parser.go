package json5pp

import (
	"io"
	"math"

	"github.com/kimushu/json5pp/internal"
)

// Parser reads one or more top-level values from an input medium under a
// Context. In finished mode a successful Parse requires end of input after
// the value; in streaming mode trailing input is left unconsumed and a
// further Parse call reads the next top-level value from the same medium.
//
// The parser recurses once per nesting level, so input depth is bounded
// only by the call stack. \uXXXX escapes decode one UTF-16 code unit each;
// surrogate pairs are not assembled into a single codepoint.
type Parser struct {
	Context
	in *cursor
}

// NewParser binds a new Parser to r with the given rules refined by ms.
func NewParser(r io.Reader, rules RuleSet, ms ...Manipulator) *Parser {
	return &Parser{Context: NewContext(rules, ms...), in: newCursor(r)}
}

// Parse reads the next top-level value. The first grammar violation aborts
// the whole parse with a *SyntaxError; there is no partial value.
func (p *Parser) Parse() (*Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.rules.Finished() {
		ch, err := p.skipSpaces()
		if err != nil {
			return nil, err
		}
		if ch != eof {
			return nil, syntaxError(ch, "JSON")
		}
	}
	return v, nil
}

// parseValue dispatches on the first non-space character to exactly one
// production. Anything that is not a bracket, quote or literal prefix falls
// through to the number production, which rejects it there.
func (p *Parser) parseValue() (*Value, error) {
	ch, err := p.skipSpaces()
	if err != nil {
		return nil, err
	}
	p.in.unget()

	switch ch {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case '"', '\'':
		return p.parseString()
	case 'n':
		return p.parseNull()
	case 't', 'f':
		return p.parseBoolean()
	default:
		return p.parseNumber()
	}
}

// skipSpaces consumes whitespace and, when the matching toggles are on,
// comments, returning the first significant character (or eof). It is
// re-entered after every consumed comment.
func (p *Parser) skipSpaces() (int, error) {
	for {
		ch := p.in.get()
		switch ch {
		case '\t', '\n', '\r', ' ':
			continue
		case '/':
			allowSingle := p.rules.has(ruleSingleLineComment)
			allowMulti := p.rules.has(ruleMultiLineComment)
			if !allowSingle && !allowMulti {
				return ch, nil
			}
			ch = p.in.get()
			switch {
			case allowSingle && ch == '/':
				for ch != eof && ch != '\r' && ch != '\n' {
					ch = p.in.get()
				}
				if ch == eof {
					return eof, nil
				}
				// terminator is a newline, resume skipping
				continue
			case allowMulti && ch == '*':
				if err := p.skipBlockComment(); err != nil {
					return 0, err
				}
				continue
			default:
				// the slash is consumed; the character after it is the
				// offender reported upstream
				return ch, nil
			}
		default:
			return ch, nil
		}
	}
}

// skipBlockComment consumes a block comment body after the opening "/*".
// An unterminated comment is a syntax error at end of input.
func (p *Parser) skipBlockComment() error {
	seenAsterisk := false
	for {
		ch := p.in.get()
		if ch == eof {
			return syntaxError(ch, "comment")
		}
		switch {
		case ch == '*':
			seenAsterisk = true
		case seenAsterisk && ch == '/':
			return nil
		default:
			seenAsterisk = false
		}
	}
}

// expect consumes len(rest) characters and reports whether they match.
func (p *Parser) expect(rest string) bool {
	for i := 0; i < len(rest); i++ {
		if p.in.get() != int(rest[i]) {
			return false
		}
	}
	return true
}

func (p *Parser) parseNull() (*Value, error) {
	const context = "null"
	ch, err := p.skipSpaces()
	if err != nil {
		return nil, err
	}
	if ch == 'n' && p.expect("ull") {
		return NewNull(), nil
	}
	return nil, syntaxError(ch, context)
}

func (p *Parser) parseBoolean() (*Value, error) {
	const context = "boolean"
	ch, err := p.skipSpaces()
	if err != nil {
		return nil, err
	}
	if ch == 't' && p.expect("rue") {
		return NewBoolean(true), nil
	}
	if ch == 'f' && p.expect("alse") {
		return NewBoolean(false), nil
	}
	return nil, syntaxError(ch, context)
}

func (p *Parser) parseNumber() (*Value, error) {
	const context = "number"
	var (
		intPart  uint64
		fracPart uint64
		fracDivs int
		expPart  int
		expNeg   bool
		negative bool
	)

	ch, err := p.skipSpaces()
	if err != nil {
		return nil, err
	}
	if ch == '-' {
		negative = true
		ch = p.in.get()
	} else if p.rules.has(ruleExplicitPlusSign) && ch == '+' {
		ch = p.in.get()
	}

	switch {
	case ch == '0':
		// a leading zero ends the integer part immediately
		ch = p.in.get()
		if p.rules.has(ruleHexadecimal) && (ch == 'x' || ch == 'X') {
			return p.parseHexadecimal(negative)
		}
	case internal.IsDigit(ch):
		intPart = uint64(internal.DigitValue(ch))
		for ch = p.in.get(); internal.IsDigit(ch); ch = p.in.get() {
			intPart = intPart*10 + uint64(internal.DigitValue(ch))
		}
	case p.rules.has(ruleLeadingDecimalPoint) && ch == '.':
		// fraction carries the whole value
	case p.rules.has(ruleInfinity) && ch == 'i':
		if p.expect("nfinity") {
			if negative {
				return NewNumber(math.Inf(-1)), nil
			}
			return NewNumber(math.Inf(1)), nil
		}
		return nil, syntaxError(ch, context)
	case p.rules.has(ruleNaN) && ch == 'N':
		if p.expect("aN") {
			return NewNumber(math.NaN()), nil
		}
		return nil, syntaxError(ch, context)
	default:
		return nil, syntaxError(ch, context)
	}

	if ch == '.' {
		for ch = p.in.get(); internal.IsDigit(ch); ch = p.in.get() {
			fracPart = fracPart*10 + uint64(internal.DigitValue(ch))
			fracDivs++
		}
		if fracDivs == 0 && !p.rules.has(ruleTrailingDecimalPoint) {
			return nil, syntaxError(ch, context)
		}
	}

	if ch == 'e' || ch == 'E' {
		ch = p.in.get()
		switch ch {
		case '-':
			expNeg = true
			ch = p.in.get()
		case '+':
			ch = p.in.get()
		}
		if !internal.IsDigit(ch) {
			return nil, syntaxError(ch, context)
		}
		for ; internal.IsDigit(ch); ch = p.in.get() {
			expPart = expPart*10 + internal.DigitValue(ch)
		}
	}
	p.in.unget()

	value := float64(intPart)
	if fracPart > 0 {
		value += float64(fracPart) * math.Pow(10, float64(-fracDivs))
	}
	if expPart > 0 {
		if expNeg {
			expPart = -expPart
		}
		value *= math.Pow(10, float64(expPart))
	}
	if negative {
		value = -value
	}
	return NewNumber(value), nil
}

// parseHexadecimal consumes hex digits after a "0x"/"0X" prefix.
func (p *Parser) parseHexadecimal(negative bool) (*Value, error) {
	ch := p.in.get()
	n := internal.HexDigitValue(ch)
	if n < 0 {
		return nil, syntaxError(ch, "number")
	}
	value := uint64(n)
	for {
		ch = p.in.get()
		n = internal.HexDigitValue(ch)
		if n < 0 {
			break
		}
		value = value<<4 + uint64(n)
	}
	p.in.unget()

	f := float64(value)
	if negative {
		f = -f
	}
	return NewNumber(f), nil
}

func (p *Parser) parseString() (*Value, error) {
	s, err := p.parseStringLiteral("string")
	if err != nil {
		return nil, err
	}
	return NewString(s), nil
}

// parseStringLiteral decodes one quoted string, shared by the string
// production and quoted object keys.
func (p *Parser) parseStringLiteral(context string) (string, error) {
	quote, err := p.skipSpaces()
	if err != nil {
		return "", err
	}
	if quote != '"' && (!p.rules.has(ruleSingleQuote) || quote != '\'') {
		return "", syntaxError(quote, context)
	}

	var buf []byte
	for {
		ch := p.in.get()
		switch {
		case ch == quote:
			return string(buf), nil
		case ch < ' ':
			// raw control characters (and eof) never appear unescaped
			return "", syntaxError(ch, context)
		case ch == '\\':
			ch = p.in.get()
			switch ch {
			case '\'':
				if !p.rules.has(ruleSingleQuote) {
					return "", syntaxError(ch, context)
				}
			case '"', '\\', '/':
			case 'b':
				ch = '\b'
			case 'f':
				ch = '\f'
			case 'n':
				ch = '\n'
			case 'r':
				ch = '\r'
			case 't':
				ch = '\t'
			case 'u':
				var code uint16
				for i := 0; i < 4; i++ {
					ch = p.in.get()
					n := internal.HexDigitValue(ch)
					if n < 0 {
						return "", syntaxError(ch, context)
					}
					code = code<<4 + uint16(n)
				}
				buf = internal.AppendCodeUnit(buf, code)
				continue
			case '\r':
				// backslash-newline line continuation, CRLF folds to one
				if !p.rules.has(ruleMultiLineString) {
					return "", syntaxError(ch, context)
				}
				if ch = p.in.get(); ch != '\n' {
					p.in.unget()
				}
				continue
			case '\n':
				if !p.rules.has(ruleMultiLineString) {
					return "", syntaxError(ch, context)
				}
				continue
			default:
				return "", syntaxError(ch, context)
			}
			buf = append(buf, byte(ch))
		default:
			buf = append(buf, byte(ch))
		}
	}
}

func (p *Parser) parseArray() (*Value, error) {
	const context = "array"
	ch, err := p.skipSpaces()
	if err != nil {
		return nil, err
	}
	if ch != '[' {
		return nil, syntaxError(ch, context)
	}

	elems := []*Value{}
	for {
		ch, err = p.skipSpaces()
		if err != nil {
			return nil, err
		}
		if ch == ']' {
			break
		}
		if len(elems) == 0 {
			p.in.unget()
		} else if ch != ',' {
			return nil, syntaxError(ch, context)
		} else if p.rules.has(ruleTrailingComma) {
			// only a comma immediately followed by the bracket ends here
			if ch = p.in.get(); ch == ']' {
				break
			}
			p.in.unget()
		}
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return &Value{kind: Array, a: elems}, nil
}

func (p *Parser) parseObject() (*Value, error) {
	const context = "object"
	ch, err := p.skipSpaces()
	if err != nil {
		return nil, err
	}
	if ch != '{' {
		return nil, syntaxError(ch, context)
	}

	entries := map[string]*Value{}
	first := true
	for {
		ch, err = p.skipSpaces()
		if err != nil {
			return nil, err
		}
		if ch == '}' {
			break
		}
		if first {
			p.in.unget()
			first = false
		} else if ch != ',' {
			return nil, syntaxError(ch, context)
		} else if p.rules.has(ruleTrailingComma) {
			if ch = p.in.get(); ch == '}' {
				break
			}
			p.in.unget()
		}
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		ch, err = p.skipSpaces()
		if err != nil {
			return nil, err
		}
		if ch != ':' {
			return nil, syntaxError(ch, context)
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// duplicate keys: last write wins
		entries[key] = val
	}
	return &Value{kind: Object, o: entries}, nil
}

// parseKey reads one object key: a bare identifier when unquoted keys are
// enabled and the next significant character is not a quote, a quoted
// string otherwise.
func (p *Parser) parseKey() (string, error) {
	const context = "object-key"
	if p.rules.has(ruleUnquotedKey) {
		ch, err := p.skipSpaces()
		if err != nil {
			return "", err
		}
		if ch != '"' && ch != '\'' {
			var buf []byte
			for {
				if internal.IsIdentStart(ch) {
					// identifier start character
				} else if internal.IsDigit(ch) && len(buf) > 0 {
					// digits allowed after the first character
				} else if ch == ':' {
					break
				} else {
					return "", syntaxError(ch, context)
				}
				buf = append(buf, byte(ch))
				ch = p.in.get()
			}
			p.in.unget()
			return string(buf), nil
		}
		p.in.unget()
	}
	return p.parseStringLiteral(context)
}
