package symbler

import "math"

// Epsilon is the distance under which two points are the same vertex.
const Epsilon = 0.001

// Point represents a 2D point in model or canvas units.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the offset of length dist in direction angle (radians).
func Polar(angle, dist float64) Point {
	return Point{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Near reports whether q lies strictly within Epsilon of p.
func (p Point) Near(q Point) bool {
	return p.Distance(q) < Epsilon
}

// Less orders points by x, then by y.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}
