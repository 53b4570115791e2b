// Package path turns path elements with curves into polylines.
package path

import "math"

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product of p and q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the distance from the origin.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Lerp interpolates linearly from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Element is one path command.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

// LineTo draws a straight line.
type LineTo struct{ Point Point }

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct{ Control, Point Point }

// CubicTo draws a cubic Bézier curve.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (QuadTo) isElement()  {}
func (CubicTo) isElement() {}
func (Close) isElement()   {}

// Subpath is a flattened polyline. Closed subpaths have an implicit
// segment from the last point back to the first.
type Subpath struct {
	Points []Point
	Closed bool
}

// Bounds returns the bounding box of all points. ok is false when there
// are no points.
func Bounds(subpaths []Subpath) (lo, hi Point, ok bool) {
	lo = Point{math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1)}
	for _, sp := range subpaths {
		for _, p := range sp.Points {
			lo.X = min(lo.X, p.X)
			lo.Y = min(lo.Y, p.Y)
			hi.X = max(hi.X, p.X)
			hi.Y = max(hi.Y, p.Y)
			ok = true
		}
	}
	return lo, hi, ok
}
