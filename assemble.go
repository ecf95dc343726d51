package symbler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArgRange is returned by Assemble when a field value does not fit the
// nibble width its slot has at that point of the program.
var ErrArgRange = errors.New("symbler: argument out of range")

const hexDigits = "0123456789abcdef"

// Assemble encodes cmds as a nibble stream that Parse decodes back into the
// same commands.
//
// Vertex reference widths depend on the keyed vertices created by earlier
// commands, so Assemble runs the program on a scratch Symbol while encoding.
func Assemble(cmds []Command) (string, error) {
	s := newSymbol(defaultParseOptions())
	var sb strings.Builder
	for i, c := range cmds {
		if int(c.Op) >= NumOpcodes || len(c.Args) != c.Op.NumFields() {
			return "", fmt.Errorf("command %d (%v): %w", i, c, ErrBadCommand)
		}
		sb.WriteByte(hexDigits[c.Op])
		for j, w := range c.Op.fieldWidths(s.KeyCount()) {
			if err := writeField(&sb, c.Args[j], w); err != nil {
				return "", fmt.Errorf("command %d (%v) field %d: %w", i, c, j+1, err)
			}
		}
		s.execute(c)
	}
	return sb.String(), nil
}

func writeField(sb *strings.Builder, v, width int) error {
	limit := 1
	for range width {
		limit *= 16
	}
	if v < 0 || v >= limit {
		return fmt.Errorf("%w: %d does not fit %d nibble(s)", ErrArgRange, v, width)
	}
	for shift := 4 * (width - 1); shift >= 0; shift -= 4 {
		sb.WriteByte(hexDigits[(v>>shift)&0xf])
	}
	return nil
}
