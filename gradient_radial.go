package agg

import (
	"fmt"
	"math"
)

// focusLimit is how far towards the circle a focal point may sit, as a
// fraction of the radius.
const focusLimit = 0.99

// RadialGradientPaint varies color from the focal point (FX, FY), where
// t = 0, to the circle of radius R around (CX, CY), where t = 1. Along
// each ray from the focus, t is the fraction of the distance to the
// circle. A focus outside the circle is pulled in to 0.99·R.
type RadialGradientPaint struct {
	CX, CY, R     float64
	FX, FY        float64
	Stops         []ColorStop
	Spread        Spread
	Units         GradientUnits
	Interpolation Interpolation
}

// NewRadialGradient creates a validated radial gradient in user space
// with the focus at the centre.
func NewRadialGradient(cx, cy, r float64, stops []ColorStop, spread Spread) (*RadialGradientPaint, error) {
	g := &RadialGradientPaint{
		CX: cx, CY: cy, R: r,
		FX: cx, FY: cy,
		Stops:  append([]ColorStop(nil), stops...),
		Spread: spread,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (*RadialGradientPaint) paintMarker() {}

func (g *RadialGradientPaint) units() GradientUnits { return g.Units }

// Validate checks the geometry and the stops.
func (g *RadialGradientPaint) Validate() error {
	if !isFinite(g.CX) || !isFinite(g.CY) || !isFinite(g.FX) || !isFinite(g.FY) || !isFinite(g.R) {
		return fmt.Errorf("%w: non-finite radial gradient geometry", ErrInvalidPaint)
	}
	if g.R <= 0 {
		return fmt.Errorf("%w: radial gradient radius %g", ErrInvalidPaint, g.R)
	}
	return validateStops(g.Stops)
}

// focus returns the focal point relative to the centre, clamped inside
// the circle.
func (g *RadialGradientPaint) focus() (ex, ey float64) {
	ex, ey = g.FX-g.CX, g.FY-g.CY
	limit := g.R * focusLimit
	if d := math.Hypot(ex, ey); d > limit {
		ex, ey = ex*limit/d, ey*limit/d
	}
	return ex, ey
}

// ColorAt implements Paint.
func (g *RadialGradientPaint) ColorAt(x, y float64) RGBA {
	if !(g.R > 0) {
		if len(g.Stops) == 0 {
			return RGBA{}
		}
		return g.Stops[len(g.Stops)-1].Color
	}
	ex, ey := g.focus()
	dx, dy := x-(g.CX+ex), y-(g.CY+ey)
	dd := dx*dx + dy*dy
	var t float64
	if dd > 0 {
		// Solve |e + s·d| = R for s > 0; t = 1/s.
		ed := ex*dx + ey*dy
		disc := ed*ed + dd*(g.R*g.R-ex*ex-ey*ey)
		t = dd / (math.Sqrt(disc) - ed)
	}
	return rampColor(g.Stops, spread(t, g.Spread), g.Interpolation)
}
