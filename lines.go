package symbler

import "math"

// Line is one drawing instruction: a segment (or a dot when A == B) with
// its color and whether each endpoint is a keyed vertex.
type Line struct {
	A, B       Point
	Color      Color
	KeyA, KeyB bool
}

// Lines returns one line per edge, in edge order, in model coordinates.
func (s *Symbol) Lines() []Line {
	lines := make([]Line, 0, len(s.edges))
	for _, e := range s.edges {
		lines = append(lines, Line{
			A:     s.vertices[e.A],
			B:     s.vertices[e.B],
			Color: e.Color,
			KeyA:  s.IsKeyed(e.A),
			KeyB:  s.IsKeyed(e.B),
		})
	}
	return lines
}

// Bounds returns the bounding box of all line endpoints. ok is false for
// an empty slice.
func Bounds(lines []Line) (lo, hi Point, ok bool) {
	if len(lines) == 0 {
		return Point{}, Point{}, false
	}
	lo = Pt(math.Inf(1), math.Inf(1))
	hi = Pt(math.Inf(-1), math.Inf(-1))
	for _, l := range lines {
		for _, p := range [2]Point{l.A, l.B} {
			lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
			hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi, true
}

// Normalize fits lines into a side×side square with the given margin.
//
// The larger extent of the bounding box is scaled to side-2*margin with the
// aspect ratio preserved, the result is centered, and the y axis is flipped
// so that it grows downward. An extent below Epsilon is treated as Epsilon,
// which centers a single point.
func Normalize(lines []Line, side, margin float64) []Line {
	lo, hi, ok := Bounds(lines)
	if !ok {
		return nil
	}

	size := hi.Sub(lo)
	dx, dy := size.X, size.Y
	extent := math.Max(math.Max(dx, dy), Epsilon)
	w := side - 2*margin
	xoff := w/2 - w*(dx/2)/extent
	yoff := w/2 - w*(dy/2)/extent

	place := func(p Point) Point {
		d := p.Sub(lo)
		return Point{
			X: margin + w*d.X/extent + xoff,
			Y: side - (margin + w*d.Y/extent + yoff),
		}
	}

	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{A: place(l.A), B: place(l.B), Color: l.Color, KeyA: l.KeyA, KeyB: l.KeyB}
	}
	return out
}
