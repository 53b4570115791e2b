package agg

import (
	"fmt"
	"math"
	"sort"

	icolor "github.com/gogpu/agg/internal/color"
)

// Spread defines how a gradient continues outside [0, 1].
type Spread uint8

const (
	// SpreadPad extends the end colors.
	SpreadPad Spread = iota
	// SpreadRepeat restarts the ramp every period.
	SpreadRepeat
	// SpreadReflect mirrors the ramp every other period.
	SpreadReflect
)

// GradientUnits selects the coordinate system of gradient geometry.
type GradientUnits uint8

const (
	// UnitsUserSpace places the gradient in the path's coordinates.
	UnitsUserSpace GradientUnits = iota
	// UnitsObjectBoundingBox places the gradient in the unit square of the
	// flattened path's bounding box.
	UnitsObjectBoundingBox
)

// Interpolation selects the color space in which stops are blended.
type Interpolation uint8

const (
	// InterpolateSRGB blends the stored sRGB components directly.
	InterpolateSRGB Interpolation = iota
	// InterpolateLinearRGB blends in linear light.
	InterpolateLinearRGB
)

// ColorStop is a color at a position in a gradient.
type ColorStop struct {
	Offset float64 // in [0, 1]
	Color  RGBA
}

// Stop is shorthand for a ColorStop with straight RGBA components.
func Stop(pos, r, g, b, a float64) ColorStop {
	return ColorStop{Offset: pos, Color: NewRGBA(r, g, b, a)}
}

// stopGrid is the resolution to which gradient positions are snapped.
const stopGrid = 1 << 24

func quantize(t float64) float64 {
	return math.Round(t*stopGrid) / stopGrid
}

// spread maps t into [0, 1] and snaps it to the stop grid.
func spread(t float64, mode Spread) float64 {
	if math.IsNaN(t) {
		return 0
	}
	switch mode {
	case SpreadRepeat:
		t -= math.Floor(t)
	case SpreadReflect:
		t -= 2 * math.Floor(t/2)
		if t > 1 {
			t = 2 - t
		}
	default:
		t = icolor.Clamp(t, 0, 1)
	}
	return icolor.Clamp(quantize(t), 0, 1)
}

func validateStops(stops []ColorStop) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: gradient needs at least 2 stops, got %d", ErrInvalidPaint, len(stops))
	}
	for i, s := range stops {
		if !isFinite(s.Offset) || s.Offset < 0 || s.Offset > 1 {
			return fmt.Errorf("%w: stop %d offset %g outside [0,1]", ErrInvalidPaint, i, s.Offset)
		}
		if i > 0 && s.Offset <= stops[i-1].Offset {
			return fmt.Errorf("%w: stop %d offset %g not after %g", ErrInvalidPaint, i, s.Offset, stops[i-1].Offset)
		}
		if !s.Color.IsFinite() {
			return fmt.Errorf("%w: stop %d color is not finite", ErrInvalidPaint, i)
		}
	}
	return nil
}

// rampColor returns the color at the spread and snapped position t. A
// position on a stop yields that stop's exact color.
func rampColor(stops []ColorStop, t float64, interp Interpolation) RGBA {
	switch len(stops) {
	case 0:
		return RGBA{}
	case 1:
		return stops[0].Color
	}
	idx := sort.Search(len(stops), func(i int) bool {
		return quantize(stops[i].Offset) >= t
	})
	if idx == len(stops) {
		return stops[len(stops)-1].Color
	}
	hi := stops[idx]
	if idx == 0 || quantize(hi.Offset) == t {
		return hi.Color
	}
	lo := stops[idx-1]
	lt := (t - quantize(lo.Offset)) / (quantize(hi.Offset) - quantize(lo.Offset))
	if interp == InterpolateLinearRGB {
		return lerpLinear(lo.Color, hi.Color, lt)
	}
	return lo.Color.Lerp(hi.Color, lt)
}

// lerpLinear interpolates the color components in linear light.
func lerpLinear(a, b RGBA, t float64) RGBA {
	mix := func(x, y float64) float64 {
		lx := icolor.SRGBToLinear(icolor.Clamp(x, 0, 1))
		ly := icolor.SRGBToLinear(icolor.Clamp(y, 0, 1))
		return icolor.LinearToSRGB(lx + (ly-lx)*t)
	}
	return RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: a.A + (b.A-a.A)*t,
	}
}

// gradient is implemented by the gradient paints. It exposes what the
// sampler needs to place the paint in device space.
type gradient interface {
	Paint
	units() GradientUnits
}
