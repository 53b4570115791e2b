package agg

import "math"

// circleK is the cubic control distance for a quarter circle of radius 1.
const circleK = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Circle appends a closed circle as four cubic Béziers.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse appends a closed axis-aligned ellipse.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * circleK
	oy := ry * circleK

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Arc appends a circular arc around (cx, cy) from angle a1 to angle a2,
// in radians. Angles grow from +X towards +Y. The arc is connected to the
// current point with a line, or starts a new subpath if there is none.
// When a2 < a1 the arc runs the other way.
func (p *Path) Arc(cx, cy, r, a1, a2 float64) {
	sweep := a2 - a1
	if math.Abs(sweep) > 2*math.Pi {
		sweep = math.Copysign(2*math.Pi, sweep)
	}

	x0, y0 := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	if p.hasCurrent {
		p.LineTo(x0, y0)
	} else {
		p.MoveTo(x0, y0)
	}
	if sweep == 0 || r == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		e := s + step
		sinS, cosS := math.Sincos(s)
		sinE, cosE := math.Sincos(e)
		p.CubicTo(
			cx+r*(cosS-k*sinS), cy+r*(sinS+k*cosS),
			cx+r*(cosE+k*sinE), cy+r*(sinE-k*cosE),
			cx+r*cosE, cy+r*sinE,
		)
	}
}

// RoundedRect appends a closed rectangle whose corners are rounded with
// radius r. The radius is clamped to half the shorter side.
func (p *Path) RoundedRect(x, y, w, h, r float64) {
	r = min(r, math.Abs(w)/2, math.Abs(h)/2)
	if r <= 0 {
		p.Rect(x, y, w, h)
		return
	}
	x0, y0 := min(x, x+w), min(y, y+h)
	x1, y1 := max(x, x+w), max(y, y+h)

	p.MoveTo(x0+r, y0)
	p.Arc(x1-r, y0+r, r, -math.Pi/2, 0)
	p.Arc(x1-r, y1-r, r, 0, math.Pi/2)
	p.Arc(x0+r, y1-r, r, math.Pi/2, math.Pi)
	p.Arc(x0+r, y0+r, r, math.Pi, 3*math.Pi/2)
	p.Close()
}
