package symbler

import "strings"

// Opcode identifies a command of the symbol language.
// The opcode nibble read from the stream is reduced modulo NumOpcodes.
type Opcode uint8

const (
	OpSelect          Opcode = iota // Select a keyed vertex
	OpAddPoint                      // Add a keyed vertex at an offset and select it
	OpConnect                       // Connect two keyed vertices
	OpLineTo                        // Add a vertex and connect it to the selection
	OpArc                           // Draw an arc around the selection, or a dot
	OpFill                          // Reserved
	OpSever                         // Remove the edges of a path between two keyed vertices
	OpBookmarkPush                  // Push the history length
	OpBookmarkPop                   // Pop the last bookmark
	OpClone                         // Reserved
	OpMirror                        // Reserved
	OpSetAngleStep                  // angleStep = π / value
	OpSetColor                      // Set the stroke color
	OpSetDistanceStep               // distanceStep = value

	// NumOpcodes is the size of the opcode table.
	NumOpcodes int = iota
)

// ArgKind is the type of one argument slot.
type ArgKind uint8

const (
	ArgValue    ArgKind = iota // 1 nibble
	ArgAngle                   // 1 nibble
	ArgDistance                // 1 nibble
	ArgScale                   // 1 nibble
	ArgColor                   // 3 nibbles, one per channel
	ArgPosition                // 2 nibbles: angle, distance
	ArgVertex                  // VertexRefWidth(keyCount) nibbles
)

var argKindNames = [...]string{
	ArgValue:    "value",
	ArgAngle:    "angle",
	ArgDistance: "distance",
	ArgScale:    "scale",
	ArgColor:    "color",
	ArgPosition: "position",
	ArgVertex:   "vertex",
}

// String returns the name of the argument kind.
func (k ArgKind) String() string {
	if int(k) < len(argKindNames) {
		return argKindNames[k]
	}
	return "unknown"
}

// Width returns the number of nibbles the slot occupies when keyCount
// keyed vertices exist.
func (k ArgKind) Width(keyCount int) int {
	switch k {
	case ArgColor:
		return 3
	case ArgPosition:
		return 2
	case ArgVertex:
		return VertexRefWidth(keyCount)
	default:
		return 1
	}
}

type opcodeInfo struct {
	name string
	args []ArgKind
}

var opcodeTable = [...]opcodeInfo{
	OpSelect:          {"SEL", []ArgKind{ArgVertex}},
	OpAddPoint:        {"ADD", []ArgKind{ArgPosition}},
	OpConnect:         {"CON", []ArgKind{ArgVertex, ArgVertex}},
	OpLineTo:          {"LIN", []ArgKind{ArgPosition}},
	OpArc:             {"ARC", []ArgKind{ArgPosition, ArgAngle}},
	OpFill:            {"FIL", []ArgKind{ArgAngle}},
	OpSever:           {"CUT", []ArgKind{ArgVertex, ArgVertex}},
	OpBookmarkPush:    {"MEM", nil},
	OpBookmarkPop:     {"FRG", nil},
	OpClone:           {"CPY", []ArgKind{ArgPosition, ArgAngle, ArgScale}},
	OpMirror:          {"MIR", []ArgKind{ArgPosition, ArgAngle, ArgScale}},
	OpSetAngleStep:    {"DIR", []ArgKind{ArgValue}},
	OpSetColor:        {"CLR", []ArgKind{ArgColor}},
	OpSetDistanceStep: {"DST", []ArgKind{ArgValue}},
}

// OpcodeFromNibble selects the command for an opcode nibble.
func OpcodeFromNibble(n int) Opcode {
	return Opcode(n % NumOpcodes)
}

// String returns the three-letter mnemonic.
func (op Opcode) String() string {
	if int(op) < len(opcodeTable) {
		return opcodeTable[op].name
	}
	return "???"
}

// Args returns the ordered argument slots of the command.
// The returned slice must not be modified.
func (op Opcode) Args() []ArgKind {
	if int(op) < len(opcodeTable) {
		return opcodeTable[op].args
	}
	return nil
}

// ArgWidth returns the total argument width in nibbles with keyCount
// keyed vertices in the registry.
func (op Opcode) ArgWidth(keyCount int) int {
	n := 0
	for _, k := range op.Args() {
		n += k.Width(keyCount)
	}
	return n
}

// ParseOpcode maps a mnemonic (case-insensitive) to its opcode.
func ParseOpcode(name string) (Opcode, bool) {
	name = strings.ToUpper(name)
	for op, info := range opcodeTable {
		if info.name == name {
			return Opcode(op), true
		}
	}
	return 0, false
}

// VertexRefWidth returns max(ceil(log16(keyCount)), 1): the number of
// nibbles of a vertex reference when keyCount keyed vertices exist.
func VertexRefWidth(keyCount int) int {
	w, capacity := 1, 16
	for capacity < keyCount {
		w++
		capacity *= 16
	}
	return w
}
