package symbler

import (
	"fmt"
	"math"
)

// Edge joins two vertices with a stroke color.
// An edge whose endpoints are the same vertex is a dot.
type Edge struct {
	A, B  int
	Color Color
}

// Dot reports whether the edge is a single-vertex dot marker.
func (e Edge) Dot() bool {
	return e.A == e.B
}

// Symbol is the interpreter state: the graph under construction plus the
// registers the commands read and write.
//
// A Symbol is built by Parse, or by NewSymbol followed by Apply. It is not
// safe for concurrent use.
type Symbol struct {
	vertices  []Point
	vertexKey []int // key index of each vertex, -1 when not keyed
	keys      []int // vertex of each key index
	edges     []Edge

	angleStep    float64
	distanceStep float64
	color        Color
	selected     int // key index, -1 until the origin exists

	bookmarks []int
	history   []Command

	pathBudget int
}

// NewSymbol returns an empty interpreter state with the default registers:
// angle step π/8, distance step 1, color black.
func NewSymbol(opts ...Option) *Symbol {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newSymbol(o)
}

func newSymbol(o parseOptions) *Symbol {
	return &Symbol{
		angleStep:    math.Pi / 8,
		distanceStep: 1,
		color:        Black,
		selected:     -1,
		bookmarks:    []int{0},
		pathBudget:   o.pathBudget,
	}
}

// Apply executes a single command and appends it to the history.
// It returns ErrBadCommand if the number of fields does not match the opcode.
func (s *Symbol) Apply(c Command) error {
	if int(c.Op) >= NumOpcodes {
		return fmt.Errorf("%w: opcode %d", ErrBadCommand, c.Op)
	}
	if len(c.Args) != c.Op.NumFields() {
		return fmt.Errorf("%w: %s takes %d fields, got %d", ErrBadCommand, c.Op, c.Op.NumFields(), len(c.Args))
	}
	s.execute(c)
	return nil
}

// Vertices returns a copy of the vertex coordinates, indexed by vertex id.
func (s *Symbol) Vertices() []Point {
	return append([]Point(nil), s.vertices...)
}

// Edges returns a copy of the edge list.
func (s *Symbol) Edges() []Edge {
	return append([]Edge(nil), s.edges...)
}

// KeyCount returns the number of keyed vertices.
func (s *Symbol) KeyCount() int {
	return len(s.keys)
}

// KeyVertex returns the vertex id registered under key index k.
func (s *Symbol) KeyVertex(k int) (int, bool) {
	if k < 0 || k >= len(s.keys) {
		return -1, false
	}
	return s.keys[k], true
}

// IsKeyed reports whether vertex v has a key index.
func (s *Symbol) IsKeyed(v int) bool {
	return v >= 0 && v < len(s.vertexKey) && s.vertexKey[v] >= 0
}

// Selected returns the selected key index, or -1 before the first command.
func (s *Symbol) Selected() int {
	return s.selected
}

// AngleStep returns the angular step in radians.
func (s *Symbol) AngleStep() float64 { return s.angleStep }

// DistanceStep returns the distance step in model units.
func (s *Symbol) DistanceStep() float64 { return s.distanceStep }

// Color returns the current stroke color.
func (s *Symbol) Color() Color { return s.color }

// History returns the executed commands in order.
func (s *Symbol) History() []Command {
	return append([]Command(nil), s.history...)
}

// Bookmarks returns the bookmark stack, bottom first.
func (s *Symbol) Bookmarks() []int {
	return append([]int(nil), s.bookmarks...)
}
