package symbler

import (
	"log/slog"
	"math"
)

// ArcStep is the target length, in raw angle-times-distance units, of one
// arc segment.
const ArcStep = 0.05

func (s *Symbol) execute(c Command) {
	if len(s.vertices) == 0 {
		s.addVertex(Point{}, true, true)
	}

	a := c.Args
	switch c.Op {
	case OpSelect:
		s.selectKey(a[0])
	case OpAddPoint:
		s.addVertex(s.offset(float64(a[0]), float64(a[1])), true, true)
	case OpConnect:
		if v1, ok := s.KeyVertex(a[0]); ok {
			if v2, ok := s.KeyVertex(a[1]); ok {
				s.addEdge(v1, v2)
			}
		}
	case OpLineTo:
		from := s.keys[s.selected]
		to := s.addVertex(s.offset(float64(a[0]), float64(a[1])), true, true)
		s.addEdge(from, to)
	case OpArc:
		s.arc(a[0], a[1], a[2])
	case OpSever:
		if v1, ok := s.KeyVertex(a[0]); ok {
			if v2, ok := s.KeyVertex(a[1]); ok {
				s.sever(v1, v2)
			}
		}
	case OpBookmarkPush:
		s.bookmarks = append(s.bookmarks, len(s.history))
	case OpBookmarkPop:
		if len(s.bookmarks) > 1 {
			s.bookmarks = s.bookmarks[:len(s.bookmarks)-1]
		}
	case OpSetAngleStep:
		if a[0] != 0 {
			s.angleStep = math.Pi / float64(a[0])
		}
	case OpSetDistanceStep:
		s.distanceStep = float64(a[0])
	case OpSetColor:
		s.color = ColorFromNibbles(a[0], a[1], a[2])
	case OpFill, OpClone, OpMirror:
		// Reserved: FIL [angle], CPY and MIR [position, angle, scale].
	}

	s.history = append(s.history, c)
	Logger().Debug("symbler: command",
		slog.String("op", c.Op.String()),
		slog.Any("args", c.Args),
		slog.Int("keys", len(s.keys)),
		slog.Int("edges", len(s.edges)))
}

func (s *Symbol) selectKey(ref int) {
	if len(s.keys) == 0 {
		s.selected = 0
		return
	}
	s.selected = ref % len(s.keys)
}

// offset returns the selected vertex displaced by the polar offset
// (angle*angleStep, dist*distanceStep).
func (s *Symbol) offset(angle, dist float64) Point {
	var origin Point
	if len(s.keys) > 0 {
		origin = s.vertices[s.keys[s.selected]]
	}
	return origin.Add(Polar(angle*s.angleStep, dist*s.distanceStep))
}

// arc draws a poly-line around the selected vertex from direction
// dir-half to dir+half at radius dist. A zero radius leaves a dot on the
// selected vertex instead.
func (s *Symbol) arc(dir, dist, half int) {
	if dist == 0 {
		v := s.keys[s.selected]
		s.edges = append(s.edges, Edge{A: v, B: v, Color: s.color})
		return
	}

	nsegs := int(math.Ceil(float64(2*half*dist) / ArcStep))
	if nsegs < 1 {
		nsegs = 1
	}
	segarc := float64(2*half) / float64(nsegs)
	start := float64(dir - half)

	prev := s.addVertex(s.offset(start, float64(dist)), false, false)
	for i := 1; i <= nsegs; i++ {
		next := s.addVertex(s.offset(start+segarc*float64(i), float64(dist)), i == nsegs, false)
		s.addEdge(prev, next)
		prev = next
	}
}

func (s *Symbol) sever(v1, v2 int) {
	path := s.findPath(v1, v2)
	if len(path) == 0 {
		return
	}
	cut := make(map[int]bool, len(path))
	for _, i := range path {
		cut[i] = true
	}
	kept := s.edges[:0]
	for i, e := range s.edges {
		if !cut[i] {
			kept = append(kept, e)
		}
	}
	s.edges = kept
	Logger().Debug("symbler: severed path",
		slog.Int("from", v1), slog.Int("to", v2), slog.Int("edges", len(path)))
}
