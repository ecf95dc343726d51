package symbler

import "testing"

func TestCrossing(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Point
		want           Point
		ok             bool
	}{
		{"x", Pt(0, 0), Pt(2, 2), Pt(0, 2), Pt(2, 0), Pt(1, 1), true},
		{"shared endpoint", Pt(0, 0), Pt(2, 2), Pt(2, 2), Pt(4, 0), Point{}, false},
		{"parallel", Pt(0, 0), Pt(2, 2), Pt(0, 1), Pt(2, 3), Point{}, false},
		{"collinear overlap", Pt(0, 0), Pt(2, 0), Pt(1, 0), Pt(3, 0), Point{}, false},
		{"disjoint boxes", Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, -1), Point{}, false},
		{"vertical and horizontal", Pt(1, -1), Pt(1, 1), Pt(0, 0), Pt(2, 0), Pt(1, 0), true},
		{"horizontal and vertical", Pt(0, 0), Pt(2, 0), Pt(1, -1), Pt(1, 1), Pt(1, 0), true},
		{"both vertical", Pt(1, 0), Pt(1, 2), Pt(1, 1), Pt(1, 3), Point{}, false},
		{"t-junction", Pt(1, 0), Pt(1, 1), Pt(0, 0), Pt(2, 0), Pt(1, 0), true},
		{"lines cross outside segments", Pt(0, 0), Pt(1, 1), Pt(0, 3), Pt(1.5, 1.4), Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := crossing(tt.a1, tt.a2, tt.b1, tt.b2)
			if ok != tt.ok {
				t.Fatalf("crossing() ok = %v, want %v (point %v)", ok, tt.ok, got)
			}
			if ok && !near(got, tt.want.X, tt.want.Y) {
				t.Errorf("crossing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddVertex_Merge(t *testing.T) {
	s := NewSymbol()
	a := s.addVertex(Pt(1, 1), false, false)
	b := s.addVertex(Pt(1, 1), false, false)
	c := s.addVertex(Pt(1+Epsilon/2, 1), false, false)
	d := s.addVertex(Pt(1+2*Epsilon, 1), false, false)

	if a != b || a != c {
		t.Errorf("merged ids = %d, %d, %d; want all equal", a, b, c)
	}
	if d == a {
		t.Error("point 2ε away merged")
	}
	if s.KeyCount() != 0 {
		t.Errorf("KeyCount() = %d, want 0", s.KeyCount())
	}
}

func TestAddVertex_Promote(t *testing.T) {
	s := NewSymbol()
	v := s.addVertex(Pt(3, 4), false, false)
	if s.IsKeyed(v) {
		t.Fatal("plain vertex is keyed")
	}

	s.addVertex(Pt(0, 0), true, true)
	if got := s.addVertex(Pt(3, 4), true, false); got != v {
		t.Fatalf("promotion returned %d, want %d", got, v)
	}
	if !s.IsKeyed(v) || s.vertexKey[v] != 1 {
		t.Errorf("vertex key = %d, want 1", s.vertexKey[v])
	}
	if s.Selected() != 0 {
		t.Errorf("promotion without select moved the selection to %d", s.Selected())
	}

	s.addVertex(Pt(3, 4), true, true)
	if s.Selected() != 1 || s.KeyCount() != 2 {
		t.Errorf("Selected() = %d, KeyCount() = %d; want 1, 2", s.Selected(), s.KeyCount())
	}
}

func TestAddEdge_DegenerateDropped(t *testing.T) {
	s := NewSymbol()
	a := s.addVertex(Pt(0, 0), true, true)
	s.addEdge(a, a)
	if len(s.edges) != 0 {
		t.Errorf("edges = %v, want none", s.edges)
	}
}

func TestAddEdge_CanonicalOrder(t *testing.T) {
	s := NewSymbol()
	a := s.addVertex(Pt(5, 0), true, true)
	b := s.addVertex(Pt(-1, 3), true, true)
	s.addEdge(a, b)
	if len(s.edges) != 1 || s.edges[0].A != b || s.edges[0].B != a {
		t.Errorf("edges = %v, want %d->%d", s.edges, b, a)
	}
}

func TestAddEdge_DotsAreNotCrossed(t *testing.T) {
	s := NewSymbol()
	m := s.addVertex(Pt(1, 1), true, true)
	s.edges = append(s.edges, Edge{A: m, B: m})
	a := s.addVertex(Pt(0, 0), true, false)
	b := s.addVertex(Pt(2, 2), true, false)
	s.addEdge(a, b)
	if len(s.edges) != 2 {
		t.Errorf("edges = %v, want the dot and one segment", s.edges)
	}
}

func TestAddEdge_MultipleCrossings(t *testing.T) {
	s := NewSymbol()
	// Three vertical strokes at x = 1, 2, 3.
	for x := 1.0; x <= 3; x++ {
		lo := s.addVertex(Pt(x, -1), true, false)
		hi := s.addVertex(Pt(x, 1), true, false)
		s.addEdge(lo, hi)
	}
	a := s.addVertex(Pt(0, 0), true, false)
	b := s.addVertex(Pt(4, 0), true, false)
	s.addEdge(b, a)

	// 3 strokes split in two, plus the horizontal split in four.
	if len(s.edges) != 10 {
		t.Fatalf("edges = %v, want 10", s.edges)
	}
	for x := 1.0; x <= 3; x++ {
		v := vertexAt(s, x, 0)
		if v < 0 || !s.IsKeyed(v) {
			t.Errorf("no keyed crossing at (%v, 0)", x)
		}
	}
	// The horizontal chain runs left to right.
	chain := []float64{0, 1, 2, 3, 4}
	for i := 1; i < len(chain); i++ {
		if !hasEdge(s, Pt(chain[i-1], 0), Pt(chain[i], 0)) {
			t.Errorf("missing chain edge %v-%v", chain[i-1], chain[i])
		}
	}
}
