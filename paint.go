package agg

import "fmt"

// Paint is a color source for a fill or stroke pass. The set of
// implementations is closed: SolidPaint, *LinearGradientPaint and
// *RadialGradientPaint.
//
// ColorAt returns the straight color at a point in paint space. For
// gradients in ObjectBoundingBox units, paint space is the unit square
// spanning the shape's bounding box.
type Paint interface {
	paintMarker()
	ColorAt(x, y float64) RGBA
}

// SolidPaint is a single uniform color.
type SolidPaint struct {
	Color RGBA
}

// Solid returns an opaque solid paint.
func Solid(r, g, b float64) SolidPaint {
	return SolidPaint{Color: RGB(r, g, b)}
}

// SolidRGBA returns a solid paint with alpha.
func SolidRGBA(r, g, b, a float64) SolidPaint {
	return SolidPaint{Color: NewRGBA(r, g, b, a)}
}

func (SolidPaint) paintMarker() {}

// ColorAt implements Paint.
func (s SolidPaint) ColorAt(_, _ float64) RGBA {
	return s.Color
}

// validatePaint checks a paint before it is used for drawing.
func validatePaint(p Paint) error {
	switch v := p.(type) {
	case nil:
		return fmt.Errorf("%w: nil paint", ErrInvalidPaint)
	case SolidPaint:
		if !v.Color.IsFinite() {
			return fmt.Errorf("%w: non-finite solid color", ErrInvalidPaint)
		}
		return nil
	case *SolidPaint:
		if v == nil {
			return fmt.Errorf("%w: nil paint", ErrInvalidPaint)
		}
		return validatePaint(*v)
	case *LinearGradientPaint:
		if v == nil {
			return fmt.Errorf("%w: nil paint", ErrInvalidPaint)
		}
		return v.Validate()
	case *RadialGradientPaint:
		if v == nil {
			return fmt.Errorf("%w: nil paint", ErrInvalidPaint)
		}
		return v.Validate()
	}
	return fmt.Errorf("%w: unsupported paint %T", ErrInvalidPaint, p)
}
