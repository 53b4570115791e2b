package agg

import "fmt"

// LinearGradientPaint varies color along the line from (X1, Y1) to
// (X2, Y2). Points project perpendicularly onto that line.
//
// Example:
//
//	g, err := agg.NewLinearGradient(0, 0, 100, 0, []agg.ColorStop{
//	    agg.Stop(0, 1, 0, 0, 1),
//	    agg.Stop(1, 0, 0, 1, 1),
//	}, agg.SpreadPad)
type LinearGradientPaint struct {
	X1, Y1, X2, Y2 float64
	Stops          []ColorStop
	Spread         Spread
	Units          GradientUnits
	Interpolation  Interpolation
}

// NewLinearGradient creates a validated linear gradient in user space.
func NewLinearGradient(x1, y1, x2, y2 float64, stops []ColorStop, spread Spread) (*LinearGradientPaint, error) {
	g := &LinearGradientPaint{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Stops:  append([]ColorStop(nil), stops...),
		Spread: spread,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (*LinearGradientPaint) paintMarker() {}

func (g *LinearGradientPaint) units() GradientUnits { return g.Units }

// Validate checks the geometry and the stops.
func (g *LinearGradientPaint) Validate() error {
	if !isFinite(g.X1) || !isFinite(g.Y1) || !isFinite(g.X2) || !isFinite(g.Y2) {
		return fmt.Errorf("%w: non-finite linear gradient geometry", ErrInvalidPaint)
	}
	return validateStops(g.Stops)
}

// ColorAt implements Paint. A gradient whose end points coincide is the
// color of its last stop.
func (g *LinearGradientPaint) ColorAt(x, y float64) RGBA {
	dx, dy := g.X2-g.X1, g.Y2-g.Y1
	den := dx*dx + dy*dy
	if den == 0 {
		if len(g.Stops) == 0 {
			return RGBA{}
		}
		return g.Stops[len(g.Stops)-1].Color
	}
	t := ((x-g.X1)*dx + (y-g.Y1)*dy) / den
	return rampColor(g.Stops, spread(t, g.Spread), g.Interpolation)
}
