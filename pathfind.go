package symbler

import "log/slog"

// pathFinder runs a depth-first search over the edge list. An edge is used
// at most once per path and no vertex is entered twice. Leaving the source
// does not count as entering it, so the walk may pass back through it once.
// The target is
// tested before the revisit check, so a search from a vertex to itself
// finds a dot or a cycle through it.
type pathFinder struct {
	edges  []Edge
	target int
	used   []bool
	onPath []bool
	budget int
}

// findPath returns the edge indices of the first path from v1 to v2 in
// traversal order, or nil when none exists.
func (s *Symbol) findPath(v1, v2 int) []int {
	f := &pathFinder{
		edges:  s.edges,
		target: v2,
		used:   make([]bool, len(s.edges)),
		onPath: make([]bool, len(s.vertices)),
		budget: s.pathBudget,
	}
	path, _ := f.search(v1, nil)
	if f.budget < 0 {
		Logger().Warn("symbler: path search budget exhausted",
			slog.Int("from", v1), slog.Int("to", v2), slog.Int("budget", s.pathBudget))
	}
	return path
}

func (f *pathFinder) search(cur int, path []int) ([]int, bool) {
	for i, e := range f.edges {
		if f.used[i] || (e.A != cur && e.B != cur) {
			continue
		}
		f.budget--
		if f.budget < 0 {
			return nil, false
		}
		next := e.A
		if next == cur {
			next = e.B
		}
		if next == f.target {
			return append(path, i), true
		}
		if f.onPath[next] {
			continue
		}
		f.used[i], f.onPath[next] = true, true
		if p, ok := f.search(next, append(path, i)); ok {
			return p, true
		}
		f.used[i], f.onPath[next] = false, false
	}
	return nil, false
}
