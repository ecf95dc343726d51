package symbler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCommand is returned by ParseCommand for malformed mnemonic lines.
var ErrBadCommand = errors.New("symbler: malformed command")

// Command is one decoded command.
//
// Args holds one value per field: a vertex reference is a single field
// regardless of its nibble width, a position is two fields (angle, distance)
// and a color is three fields (r, g, b). Every other slot is one field.
type Command struct {
	Op   Opcode
	Args []int
}

// NumFields returns the number of Args values a command with this opcode
// carries.
func (op Opcode) NumFields() int {
	n := 0
	for _, k := range op.Args() {
		n += k.fields()
	}
	return n
}

func (k ArgKind) fields() int {
	switch k {
	case ArgColor:
		return 3
	case ArgPosition:
		return 2
	default:
		return 1
	}
}

// fieldWidths returns the nibble width of every field of op.
func (op Opcode) fieldWidths(keyCount int) []int {
	widths := make([]int, 0, op.NumFields())
	for _, k := range op.Args() {
		switch k {
		case ArgVertex:
			widths = append(widths, VertexRefWidth(keyCount))
		default:
			for i := 0; i < k.fields(); i++ {
				widths = append(widths, 1)
			}
		}
	}
	return widths
}

// decodeCommand groups raw nibbles into fields, reading multi-nibble fields
// most significant nibble first.
func decodeCommand(op Opcode, raw []int, keyCount int) Command {
	widths := op.fieldWidths(keyCount)
	args := make([]int, len(widths))
	pos := 0
	for i, w := range widths {
		v := 0
		for _, n := range raw[pos : pos+w] {
			v = v*16 + n
		}
		args[i] = v
		pos += w
	}
	return Command{Op: op, Args: args}
}

// String returns the mnemonic form, e.g. "LIN 4 1".
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Op.String())
	for _, a := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(a))
	}
	return sb.String()
}

// ParseCommand parses the mnemonic form produced by Command.String.
// Mnemonics are case-insensitive and fields may be separated by spaces or
// commas.
func ParseCommand(line string) (Command, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrBadCommand)
	}
	op, ok := ParseOpcode(fields[0])
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown mnemonic %q", ErrBadCommand, fields[0])
	}
	if got, want := len(fields)-1, op.NumFields(); got != want {
		return Command{}, fmt.Errorf("%w: %s takes %d fields, got %d", ErrBadCommand, op, want, got)
	}
	args := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return Command{}, fmt.Errorf("%w: field %d of %s: %q", ErrBadCommand, i+1, op, f)
		}
		args[i] = v
	}
	return Command{Op: op, Args: args}, nil
}
