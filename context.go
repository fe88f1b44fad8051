package json5pp

import (
	"bufio"
	"io"
)

// Context is the mutable state of one parse or stringify operation: a
// RuleSet snapshot refined by accumulated Manipulators. Parser and
// Stringifier each bind a Context to their input or output medium. A
// Context is never shared across concurrent operations.
type Context struct {
	rules RuleSet
}

// NewContext builds a Context from a RuleSet refined by the given
// manipulators.
func NewContext(rules RuleSet, ms ...Manipulator) Context {
	return Context{rules: rules.Apply(ms...)}
}

// Apply folds further manipulators into the Context.
func (c *Context) Apply(ms ...Manipulator) {
	c.rules = c.rules.Apply(ms...)
}

// Rules returns the accumulated RuleSet snapshot.
func (c *Context) Rules() RuleSet { return c.rules }

// eof is the end-of-input marker returned by the cursor. Read failures of
// any kind surface as end of input; the parser draws no distinction
// between an unreadable medium and a truncated one.
const eof = -1

// cursor reads the input one byte at a time with a single byte of
// pushback, mirroring the get/unget discipline the grammar needs. Once eof
// is returned every subsequent get returns eof again.
type cursor struct {
	r      *bufio.Reader
	last   int
	pushed bool
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: bufio.NewReaderSize(r, defaultBufferSize), last: eof}
}

func (c *cursor) get() int {
	if c.pushed {
		c.pushed = false
		return c.last
	}
	b, err := c.r.ReadByte()
	if err != nil {
		c.last = eof
		return eof
	}
	c.last = int(b)
	return c.last
}

// unget pushes the last returned byte back; the next get returns it again.
// Only one byte of pushback is ever needed. Ungetting eof is a no-op in
// effect, since get keeps returning eof.
func (c *cursor) unget() {
	c.pushed = true
}
