package symbler

import "testing"

func edgeSet(s *Symbol) map[Edge]int {
	m := make(map[Edge]int)
	for _, e := range s.edges {
		m[e]++
	}
	return m
}

func TestParse_Sever(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		removed [][2]Point
		left    int
	}{
		{
			name:    "single edge of a polyline",
			in:      "301 341 381 612",
			removed: [][2]Point{{Pt(1, 0), Pt(1, 1)}},
			left:    2,
		},
		{
			name:    "whole polyline",
			in:      "301 341 381 603",
			removed: [][2]Point{{Pt(0, 0), Pt(1, 0)}, {Pt(1, 0), Pt(1, 1)}, {Pt(1, 1), Pt(0, 1)}},
			left:    0,
		},
		{
			name: "walk back through the source",
			in:   "301 341 220 00 381 603",
			removed: [][2]Point{
				{Pt(0, 0), Pt(1, 0)}, {Pt(1, 0), Pt(1, 1)},
				{Pt(1, 1), Pt(0, 0)}, {Pt(0, 0), Pt(-1, 0)},
			},
			left: 0,
		},
		{
			name:    "first path around a square",
			in:      "301 341 381 3c1 602",
			removed: [][2]Point{{Pt(0, 0), Pt(1, 0)}, {Pt(1, 0), Pt(1, 1)}},
			left:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Parse(tt.in[:len(tt.in)-4])
			s := Parse(tt.in)
			if len(s.edges) != tt.left {
				t.Fatalf("edges = %v, want %d", s.edges, tt.left)
			}
			for _, e := range tt.removed {
				if hasEdge(s, e[0], e[1]) {
					t.Errorf("edge %v-%v survived", e[0], e[1])
				}
				if !hasEdge(before, e[0], e[1]) {
					t.Errorf("edge %v-%v missing before the cut", e[0], e[1])
				}
			}
			rest := edgeSet(before)
			for e, n := range edgeSet(s) {
				if rest[e] < n {
					t.Errorf("edge %v appeared after the cut", e)
				}
			}
		})
	}
}

func TestParse_SeverWithoutPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"disconnected", "301 101 602"},
		{"dangling reference", "301 101 609"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Parse(tt.in[:len(tt.in)-4])
			s := Parse(tt.in)
			if len(s.History()) != len(before.History())+1 {
				t.Fatalf("cut was not executed: %v", s.History())
			}
			if len(s.edges) != len(before.edges) {
				t.Errorf("edges = %v, want %v", s.edges, before.edges)
			}
		})
	}
}

func TestFindPath_SameVertex(t *testing.T) {
	s := NewSymbol()
	a := s.addVertex(Pt(0, 0), true, true)
	b := s.addVertex(Pt(1, 0), true, false)
	s.addEdge(a, b)
	if p := s.findPath(a, a); len(p) != 0 {
		t.Errorf("findPath(a, a) without a dot = %v, want none", p)
	}

	s.edges = append(s.edges, Edge{A: a, B: a})
	if p := s.findPath(a, a); len(p) != 1 || p[0] != 1 {
		t.Errorf("findPath(a, a) = %v, want the dot [1]", p)
	}
}

func TestFindPath_Revisit(t *testing.T) {
	// a-b, b-c, c-a, then a-d. From a the first walk loops around the
	// triangle and leaves through a again; from b, the triangle can not be
	// entered twice, so the search backtracks to the short path.
	s := NewSymbol()
	a := s.addVertex(Pt(0, 0), true, true)
	b := s.addVertex(Pt(1, 0), true, false)
	c := s.addVertex(Pt(0, 1), true, false)
	d := s.addVertex(Pt(-1, 0), true, false)
	s.edges = []Edge{{A: a, B: b}, {A: b, B: c}, {A: c, B: a}, {A: a, B: d}}

	p := s.findPath(a, d)
	if len(p) != 4 || p[0] != 0 || p[1] != 1 || p[2] != 2 || p[3] != 3 {
		t.Errorf("findPath(a, d) = %v, want [0 1 2 3]", p)
	}
	if p := s.findPath(b, d); len(p) != 2 || p[0] != 0 || p[1] != 3 {
		t.Errorf("findPath(b, d) = %v, want [0 3]", p)
	}
}

func TestFindPath_Budget(t *testing.T) {
	in := "301 301 301 301 301 301 301 301 6"
	s := Parse(in+"08", WithPathBudget(3))
	if len(s.edges) != 8 {
		t.Errorf("search over budget cut %d edges", 8-len(s.edges))
	}
	s = Parse(in + "08")
	if len(s.edges) != 0 {
		t.Errorf("edges = %v, want all cut", s.edges)
	}
}
