package symbler

import (
	"log/slog"
	"math"
	"slices"
)

// verticalSlope stands in for the slope of a vertical segment.
const verticalSlope = 999999999

// addVertex returns the vertex within Epsilon of p, appending one if none
// exists. With key set, the vertex is keyed if it was not already; with
// sel also set, its key becomes the selection.
func (s *Symbol) addVertex(p Point, key, sel bool) int {
	id := -1
	for i, v := range s.vertices {
		if v.Near(p) {
			id = i
			break
		}
	}
	if id < 0 {
		id = len(s.vertices)
		s.vertices = append(s.vertices, p)
		s.vertexKey = append(s.vertexKey, -1)
	}
	if key {
		if s.vertexKey[id] < 0 {
			s.vertexKey[id] = len(s.keys)
			s.keys = append(s.keys, id)
		}
		if sel {
			s.selected = s.vertexKey[id]
		}
	}
	return id
}

// addEdge inserts the segment v1-v2, splitting it and every edge it crosses
// at the crossing points.
func (s *Symbol) addEdge(v1, v2 int) {
	p1, p2 := s.vertices[v1], s.vertices[v2]
	if p1.Near(p2) {
		return
	}
	if p1.X > p2.X {
		v1, v2 = v2, v1
	}
	if !s.cut(v1, v2) {
		s.edges = append(s.edges, Edge{A: v1, B: v2, Color: s.color})
	}
}

type crossPoint struct {
	p  Point
	id int
}

// cut splits the graph along v1-v2. It reports false, leaving the graph
// untouched, when the segment crosses no edge.
func (s *Symbol) cut(v1, v2 int) bool {
	a, b := s.vertices[v1], s.vertices[v2]
	crosses := s.splitCrossed(a, b)
	if len(crosses) == 0 {
		return false
	}

	chain := append([]crossPoint{{a, v1}, {b, v2}}, crosses...)
	slices.SortStableFunc(chain, func(x, y crossPoint) int {
		switch {
		case x.p.Less(y.p):
			return -1
		case y.p.Less(x.p):
			return 1
		}
		return 0
	})
	for i := 1; i < len(chain); i++ {
		if chain[i-1].id != chain[i].id {
			s.edges = append(s.edges, Edge{A: chain[i-1].id, B: chain[i].id, Color: s.color})
		}
	}
	Logger().Debug("symbler: crossing split",
		slog.Int("from", v1), slog.Int("to", v2), slog.Int("crossings", len(crosses)))
	return true
}

// splitCrossed replaces every edge crossed by segment a-b with the two
// halves meeting at a new keyed vertex, and returns those vertices.
func (s *Symbol) splitCrossed(a, b Point) []crossPoint {
	var crosses []crossPoint
	edges := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		pa, pb := s.vertices[e.A], s.vertices[e.B]
		if pa == pb {
			edges = append(edges, e)
			continue
		}
		x, ok := crossing(a, b, pa, pb)
		if !ok {
			edges = append(edges, e)
			continue
		}
		id := s.addVertex(x, true, false)
		if id != e.A {
			edges = append(edges, Edge{A: e.A, B: id, Color: e.Color})
		}
		if id != e.B {
			edges = append(edges, Edge{A: id, B: e.B, Color: e.Color})
		}
		crosses = append(crosses, crossPoint{s.vertices[id], id})
	}
	s.edges = edges
	return crosses
}

// crossing returns the intersection of segments a1-a2 and b1-b2.
// Segments sharing an endpoint, parallel segments and segments whose
// bounding boxes do not overlap never cross.
func crossing(a1, a2, b1, b2 Point) (Point, bool) {
	if a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2 {
		return Point{}, false
	}

	x0 := math.Max(math.Min(a1.X, a2.X), math.Min(b1.X, b2.X))
	x1 := math.Min(math.Max(a1.X, a2.X), math.Max(b1.X, b2.X))
	y0 := math.Max(math.Min(a1.Y, a2.Y), math.Min(b1.Y, b2.Y))
	y1 := math.Min(math.Max(a1.Y, a2.Y), math.Max(b1.Y, b2.Y))
	if x0 > x1 || y0 > y1 {
		return Point{}, false
	}

	ta, tb := slope(a1, a2), slope(b1, b2)
	if ta == tb {
		return Point{}, false
	}

	var x Point
	switch {
	case a1.X == a2.X:
		x.X = a1.X
		x.Y = b1.Y + (x.X-b1.X)*tb
	case b1.X == b2.X:
		x.X = b1.X
		x.Y = a1.Y + (x.X-a1.X)*ta
	default:
		ia, ib := a1.Y-a1.X*ta, b1.Y-b1.X*tb
		x.X = (ib - ia) / (ta - tb)
		x.Y = ta*x.X + ia
	}

	if x.X < x0-Epsilon || x.X > x1+Epsilon || x.Y < y0-Epsilon || x.Y > y1+Epsilon {
		return Point{}, false
	}
	return x, true
}

func slope(p, q Point) float64 {
	dx := q.X - p.X
	if dx == 0 {
		return verticalSlope
	}
	return (q.Y - p.Y) / dx
}
