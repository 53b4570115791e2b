package stroke

import (
	"math"

	"github.com/gogpu/agg/internal/path"
)

// Point is a position in the stroke's coordinate space.
type Point = path.Point

// LineCap specifies the shape of open subpath endpoints.
type LineCap uint8

const (
	// LineCapButt ends the stroke flush with the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound adds a half disc of radius width/2.
	LineCapRound
	// LineCapSquare extends the stroke by width/2.
	LineCapSquare
)

// LineJoin specifies the shape of stroke corners.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges until they meet, falling back
	// to a bevel beyond the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound adds a circular arc.
	LineJoinRound
	// LineJoinBevel connects the outer corners with a straight line.
	LineJoinBevel
)

// Stroke describes the pen.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultTolerance is the default flattening tolerance for round caps and
// joins.
const DefaultTolerance = 0.25

// maxArcSteps bounds the number of chords in one round cap or join.
const maxArcSteps = 1 << 10

// StrokeExpander expands polylines into outline polygons. Its scratch
// buffers are reused between calls.
type StrokeExpander struct {
	style     Stroke
	hw        float64
	tolerance float64

	fwd, bwd []Point
	out      [][]Point
}

// NewStrokeExpander returns an expander for style.
func NewStrokeExpander(style Stroke) *StrokeExpander {
	return &StrokeExpander{
		style:     style,
		hw:        style.Width / 2,
		tolerance: DefaultTolerance,
	}
}

// SetTolerance sets the maximum deviation of round caps and joins from a
// true arc.
func (e *StrokeExpander) SetTolerance(tol float64) {
	if tol > 0 {
		e.tolerance = tol
	}
}

// Expand returns the outline polygons of subpaths. The result is owned by
// the caller.
func (e *StrokeExpander) Expand(subpaths []path.Subpath) [][]Point {
	e.out = nil
	if !(e.hw > 0) || math.IsInf(e.hw, 0) {
		return nil
	}
	for _, sp := range subpaths {
		e.expandSubpath(sp)
	}
	return e.out
}

func (e *StrokeExpander) expandSubpath(sp path.Subpath) {
	pts := dedupe(sp.Points, sp.Closed)
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		e.dot(pts[0])
		return
	}

	n := len(pts)
	segs := n - 1
	if sp.Closed {
		segs = n
	}
	dirs := make([]Point, segs)
	for i := range dirs {
		dirs[i] = unit(pts[(i+1)%n].Sub(pts[i]))
	}

	e.fwd, e.bwd = e.fwd[:0], e.bwd[:0]
	if sp.Closed {
		for i := 0; i < n; i++ {
			in := dirs[(i+segs-1)%segs]
			e.fwd = e.join(e.fwd, pts[i], in, dirs[i], -1)
			e.bwd = e.join(e.bwd, pts[i], in, dirs[i], 1)
		}
		e.emit(e.fwd)
		e.emit(reversed(e.bwd))
		return
	}

	first, last := dirs[0], dirs[segs-1]
	n0 := e.normal(first)
	e.fwd = append(e.fwd, pts[0].Sub(n0))
	e.bwd = append(e.bwd, pts[0].Add(n0))
	for i := 1; i < n-1; i++ {
		e.fwd = e.join(e.fwd, pts[i], dirs[i-1], dirs[i], -1)
		e.bwd = e.join(e.bwd, pts[i], dirs[i-1], dirs[i], 1)
	}
	end := pts[n-1]
	nl := e.normal(last)
	e.fwd = append(e.fwd, end.Sub(nl))
	e.bwd = append(e.bwd, end.Add(nl))

	outline := make([]Point, 0, len(e.fwd)+len(e.bwd)+8)
	outline = append(outline, e.fwd...)
	outline = e.cap(outline, end, last)
	for i := len(e.bwd) - 1; i >= 0; i-- {
		outline = append(outline, e.bwd[i])
	}
	outline = e.cap(outline, pts[0], first.Mul(-1))
	e.out = append(e.out, outline)
}

// normal returns the left normal of the unit direction d scaled to half
// the width.
func (e *StrokeExpander) normal(d Point) Point {
	return Point{X: -d.Y * e.hw, Y: d.X * e.hw}
}

// join appends the offset points of one side of the vertex p, where the
// path turns from direction in to direction out. side is -1 for the
// forward offset and +1 for the backward one.
func (e *StrokeExpander) join(dst []Point, p, in, out Point, side float64) []Point {
	na := e.normal(in).Mul(side)
	nb := e.normal(out).Mul(side)
	cross := in.Cross(out)
	dot := in.Dot(out)

	if math.Abs(cross) < 1e-9 && dot > 0 {
		return append(dst, p.Add(na))
	}
	if cross*side > 0 {
		// Inner side.
		return append(dst, p.Add(na), p, p.Add(nb))
	}

	dst = append(dst, p.Add(na))
	switch e.style.Join {
	case LineJoinRound:
		dst = e.arc(dst, p, na, nb, in)
	case LineJoinMiter:
		if denom := 1 + dot; denom > 1e-12 {
			limit := e.style.MiterLimit
			if math.Sqrt(2/denom) <= limit {
				dst = append(dst, p.Add(na.Add(nb).Mul(1/denom)))
			}
		}
	}
	return append(dst, p.Add(nb))
}

// cap appends the cap at p for a stroke leaving in direction d, going from
// the forward side to the backward side. The side points themselves are
// not appended.
func (e *StrokeExpander) cap(dst []Point, p, d Point) []Point {
	n := e.normal(d)
	switch e.style.Cap {
	case LineCapRound:
		return e.arc(dst, p, n.Mul(-1), n, d)
	case LineCapSquare:
		ext := d.Mul(e.hw)
		return append(dst, p.Sub(n).Add(ext), p.Add(n).Add(ext))
	}
	return dst
}

// arc appends the interior points of the circular arc around c from
// offset v0 to offset v1. For a half turn the arc passes the side that
// ahead points to.
func (e *StrokeExpander) arc(dst []Point, c, v0, v1, ahead Point) []Point {
	sweep := math.Atan2(v0.Cross(v1), v0.Dot(v1))
	if math.Abs(math.Abs(sweep)-math.Pi) < 1e-9 {
		sweep = math.Pi
		if (Point{X: -v0.Y, Y: v0.X}).Dot(ahead) < 0 {
			sweep = -math.Pi
		}
	}
	steps := int(min(math.Ceil(math.Abs(sweep)/e.arcStep()), maxArcSteps))
	if steps < 2 {
		return dst
	}
	sin, cos := math.Sincos(sweep / float64(steps))
	v := v0
	for i := 1; i < steps; i++ {
		v = Point{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
		dst = append(dst, c.Add(v))
	}
	return dst
}

// arcStep is the largest angle whose chord stays within the tolerance.
func (e *StrokeExpander) arcStep() float64 {
	if e.tolerance >= e.hw {
		return math.Pi / 2
	}
	return 2 * math.Acos(1-e.tolerance/e.hw)
}

// dot draws a zero-length subpath, which is visible only with round or
// square caps.
func (e *StrokeExpander) dot(p Point) {
	hw := e.hw
	switch e.style.Cap {
	case LineCapRound:
		v0 := Point{X: hw}
		ring := []Point{p.Add(v0)}
		ring = e.arc(ring, p, v0, v0.Mul(-1), Point{Y: 1})
		ring = append(ring, p.Sub(v0))
		ring = e.arc(ring, p, v0.Mul(-1), v0, Point{Y: -1})
		e.emit(ring)
	case LineCapSquare:
		e.emit([]Point{
			{X: p.X - hw, Y: p.Y - hw},
			{X: p.X + hw, Y: p.Y - hw},
			{X: p.X + hw, Y: p.Y + hw},
			{X: p.X - hw, Y: p.Y + hw},
		})
	}
}

func (e *StrokeExpander) emit(ring []Point) {
	if len(ring) >= 3 {
		e.out = append(e.out, append([]Point(nil), ring...))
	}
}

// dedupe drops consecutive repeated points, and for closed subpaths a
// last point equal to the first.
func dedupe(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func unit(v Point) Point {
	l := v.Length()
	return Point{X: v.X / l, Y: v.Y / l}
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
