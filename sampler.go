package agg

import "github.com/gogpu/agg/internal/path"

// sampler yields the premultiplied source color of a device pixel, with
// the master alpha already applied.
type sampler interface {
	at(x, y int) (r, g, b, a byte)
}

// solidSampler is a precomputed constant color.
type solidSampler struct {
	r, g, b, a byte
}

func (s *solidSampler) at(int, int) (r, g, b, a byte) {
	return s.r, s.g, s.b, s.a
}

// gradientSampler maps device pixel centres into paint space with a
// single affine transform.
type gradientSampler struct {
	paint Paint
	inv   Transform
	alpha float64
}

func (s *gradientSampler) at(x, y int) (r, g, b, a byte) {
	p := s.inv.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	return s.paint.ColorAt(p.X, p.Y).premul(s.alpha)
}

// newSampler resolves paint for one pass drawn through xf. subpaths are
// the flattened user-space geometry, used for bounding-box units. It
// returns nil when the pass has nothing to draw.
func newSampler(paint Paint, xf Transform, subpaths []path.Subpath, alpha float64) sampler {
	switch p := paint.(type) {
	case SolidPaint:
		r, g, b, a := p.Color.premul(alpha)
		return &solidSampler{r: r, g: g, b: b, a: a}
	case *SolidPaint:
		return newSampler(*p, xf, subpaths, alpha)
	}

	forward := xf
	if g, ok := paint.(gradient); ok && g.units() == UnitsObjectBoundingBox {
		lo, hi, ok := path.Bounds(subpaths)
		if !ok || !(hi.X > lo.X) || !(hi.Y > lo.Y) {
			Logger().Warn("agg: skipping gradient pass with empty bounding box")
			return nil
		}
		forward = xf.Multiply(Transform{
			A: hi.X - lo.X, C: lo.X,
			E: hi.Y - lo.Y, F: lo.Y,
		})
	}
	inv, err := forward.Invert()
	if err != nil {
		Logger().Warn("agg: skipping gradient pass", "transform", xf, "err", err)
		return nil
	}
	return &gradientSampler{paint: paint, inv: inv, alpha: alpha}
}
