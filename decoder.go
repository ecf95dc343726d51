package symbler

import "unicode/utf16"

// Cursor decodes a string into nibbles, one per call to Next.
//
// The input is read as UTF-16 code units, so a character outside the Basic
// Multilingual Plane yields two nibbles, one per surrogate. Spaces and tabs
// are skipped. The characters 0-9 and a-f decode to their hex value; any
// other code unit decodes to its value modulo 16, so every string is a
// valid program.
type Cursor struct {
	src []uint16
	pos int
}

// NewCursor returns a cursor positioned at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{src: utf16.Encode([]rune(s))}
}

// Next returns the next nibble. It returns (-1, false) once the input is
// exhausted.
func (c *Cursor) Next() (int, bool) {
	for c.pos < len(c.src) && isBlank(c.src[c.pos]) {
		c.pos++
	}
	if c.pos >= len(c.src) {
		return -1, false
	}
	u := c.src[c.pos]
	c.pos++
	return nibble(u), true
}

// Read fills dst with the next len(dst) nibbles. It reports false when the
// input ran out first; the cursor is then exhausted.
func (c *Cursor) Read(dst []int) bool {
	for i := range dst {
		v, ok := c.Next()
		if !ok {
			return false
		}
		dst[i] = v
	}
	return true
}

// Pos returns the offset, in UTF-16 code units, of the next unread unit.
func (c *Cursor) Pos() int {
	return c.pos
}

// Done reports whether only blanks remain.
func (c *Cursor) Done() bool {
	for i := c.pos; i < len(c.src); i++ {
		if !isBlank(c.src[i]) {
			return false
		}
	}
	return true
}

func isBlank(u uint16) bool {
	return u == ' ' || u == '\t'
}

func nibble(u uint16) int {
	switch {
	case '0' <= u && u <= '9':
		return int(u - '0')
	case 'a' <= u && u <= 'f':
		return int(u-'a') + 10
	}
	return int(u % 16)
}
