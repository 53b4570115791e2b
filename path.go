package agg

import (
	"fmt"

	"github.com/gogpu/agg/internal/path"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bézier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered list of path elements. The zero value is an empty
// path ready to use. Drawing a path never modifies it.
type Path struct {
	elements   []PathElement
	start      Point
	current    Point
	hasCurrent bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasCurrent = true
}

// LineTo draws a line to (x, y). Without a current point it behaves like
// MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.hasCurrent {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bézier curve with control point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	if !p.hasCurrent {
		p.MoveTo(cx, cy)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bézier curve with control points (c1x, c1y) and
// (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasCurrent {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath with a line back to its start.
func (p *Path) Close() {
	if !p.hasCurrent {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Lines appends an open polyline through pts as a new subpath.
func (p *Path) Lines(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
}

// Polygon appends a closed polygon through pts as a new subpath.
func (p *Path) Polygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.Lines(pts)
	p.Close()
}

// Rect appends a closed rectangle. The vertices run (x,y), (x+w,y),
// (x+w,y+h), (x,y+h), which is clockwise on a y-down canvas for positive
// w and h.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point and whether there is one.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.hasCurrent
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.hasCurrent = false
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements:   make([]PathElement, len(p.elements)),
		start:      p.start,
		current:    p.current,
		hasCurrent: p.hasCurrent,
	}
	copy(result.elements, p.elements)
	return result
}

// Transform returns a new path with every point mapped through m. The
// receiver is left unchanged.
func (p *Path) Transform(m Transform) *Path {
	result := &Path{
		elements:   make([]PathElement, 0, len(p.elements)),
		start:      m.TransformPoint(p.start),
		current:    m.TransformPoint(p.current),
		hasCurrent: p.hasCurrent,
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case QuadTo:
			result.elements = append(result.elements, QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			})
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			})
		case Close:
			result.elements = append(result.elements, e)
		}
	}
	return result
}

// Bounds returns the box enclosing every point of the path, control
// points included. ok is false for an empty path.
func (p *Path) Bounds() (r Rect, ok bool) {
	p.eachPoint(func(pt Point) {
		if !ok {
			r = Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y}
			ok = true
			return
		}
		r.X0 = min(r.X0, pt.X)
		r.Y0 = min(r.Y0, pt.Y)
		r.X1 = max(r.X1, pt.X)
		r.Y1 = max(r.Y1, pt.Y)
	})
	return r, ok
}

func (p *Path) eachPoint(fn func(Point)) {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			fn(e.Point)
		case LineTo:
			fn(e.Point)
		case QuadTo:
			fn(e.Control)
			fn(e.Point)
		case CubicTo:
			fn(e.Control1)
			fn(e.Control2)
			fn(e.Point)
		}
	}
}

// validate reports ErrInvalidGeometry for non-finite coordinates.
func (p *Path) validate() error {
	var bad bool
	var at Point
	p.eachPoint(func(pt Point) {
		if !bad && !pt.IsFinite() {
			bad, at = true, pt
		}
	})
	if bad {
		return fmt.Errorf("%w: path point (%g, %g)", ErrInvalidGeometry, at.X, at.Y)
	}
	return nil
}

// flatten converts the path into polylines in its own coordinates.
func (p *Path) flatten(tolerance float64) []path.Subpath {
	elems := make([]path.Element, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			elems = append(elems, path.MoveTo{Point: toInternal(e.Point)})
		case LineTo:
			elems = append(elems, path.LineTo{Point: toInternal(e.Point)})
		case QuadTo:
			elems = append(elems, path.QuadTo{
				Control: toInternal(e.Control),
				Point:   toInternal(e.Point),
			})
		case CubicTo:
			elems = append(elems, path.CubicTo{
				Control1: toInternal(e.Control1),
				Control2: toInternal(e.Control2),
				Point:    toInternal(e.Point),
			})
		case Close:
			elems = append(elems, path.Close{})
		}
	}
	return path.Flatten(elems, tolerance)
}

func toInternal(p Point) path.Point {
	return path.Point{X: p.X, Y: p.Y}
}
