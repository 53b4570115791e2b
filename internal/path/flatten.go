package path

import "math"

// DefaultTolerance is the maximum distance, in device pixels, between a
// curve and its flattened polyline.
const DefaultTolerance = 0.25

// maxSegments bounds the subdivision of a single curve.
const maxSegments = 1 << 12

// Flatten converts elements into polylines whose distance from the true
// curves is at most tolerance.
//
// Every MoveTo starts a subpath, including a MoveTo that is never
// followed by drawing; such subpaths hold a single point and are used for
// stroke dots. Drawing after Close without a MoveTo restarts at the closed
// subpath's first point.
func Flatten(elements []Element, tolerance float64) []Subpath {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}
	var (
		out     []Subpath
		cur     *Subpath
		start   Point
		current Point
	)
	begin := func(p Point) {
		out = append(out, Subpath{Points: []Point{p}})
		cur = &out[len(out)-1]
		start, current = p, p
	}
	ensure := func() {
		if cur == nil {
			begin(current)
		}
	}

	for _, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			begin(e.Point)
		case LineTo:
			ensure()
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case QuadTo:
			ensure()
			cur.Points = appendQuad(cur.Points, current, e.Control, e.Point, tolerance)
			current = e.Point
		case CubicTo:
			ensure()
			cur.Points = appendCubic(cur.Points, current, e.Control1, e.Control2, e.Point, tolerance)
			current = e.Point
		case Close:
			if cur != nil {
				cur.Closed = true
				cur = nil
				current = start
			}
		}
	}
	return out
}

// segmentCount applies Wang's formula: a Bézier curve of degree d whose
// second differences are bounded by m stays within tol of the polyline
// through n+1 uniform samples when n >= sqrt(d(d-1)*m / (8*tol)).
func segmentCount(m, factor, tol float64) int {
	n := math.Ceil(math.Sqrt(factor * m / tol))
	switch {
	case !(n >= 1):
		return 1
	case n > maxSegments:
		return maxSegments
	}
	return int(n)
}

func appendQuad(dst []Point, p0, p1, p2 Point, tol float64) []Point {
	m := p0.Sub(p1.Mul(2)).Add(p2).Length()
	n := segmentCount(m, 2.0/8, tol)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(p1, t)
		b := p1.Lerp(p2, t)
		dst = append(dst, a.Lerp(b, t))
	}
	return append(dst, p2)
}

func appendCubic(dst []Point, p0, p1, p2, p3 Point, tol float64) []Point {
	m := math.Max(
		p0.Sub(p1.Mul(2)).Add(p2).Length(),
		p1.Sub(p2.Mul(2)).Add(p3).Length(),
	)
	n := segmentCount(m, 6.0/8, tol)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(p1, t)
		b := p1.Lerp(p2, t)
		c := p2.Lerp(p3, t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(c, t)
		dst = append(dst, ab.Lerp(bc, t))
	}
	return append(dst, p3)
}
