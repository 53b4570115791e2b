package agg

import (
	"fmt"
	"math"

	icolor "github.com/gogpu/agg/internal/color"
	"github.com/gogpu/agg/internal/path"
	"github.com/gogpu/agg/internal/raster"
	"github.com/gogpu/agg/internal/stroke"
)

// Canvas draws shapes into an Image. It keeps scratch buffers between
// calls and is not safe for concurrent use.
type Canvas struct {
	img  *Image
	opts canvasOptions

	ras *raster.Rasterizer
	pts []raster.Point

	gammaValue float64
	gammaTable *icolor.GammaTable
	threshold  *icolor.GammaTable
}

// NewCanvas creates a canvas over img.
func NewCanvas(img *Image, opts ...CanvasOption) (*Canvas, error) {
	if img == nil || img.buf == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidBuffer)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		img:        img,
		opts:       o,
		ras:        raster.New(img.Width(), img.Height()),
		gammaValue: 1,
		gammaTable: icolor.IdentityGamma(),
		threshold:  icolor.NewGammaThreshold(o.gammaThreshold),
	}, nil
}

// Image returns the target image.
func (c *Canvas) Image() *Image { return c.img }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Height() }

// Clear sets every pixel to the opaque color (r, g, b).
func (c *Canvas) Clear(r, g, b float64) {
	c.ClearRGBA(r, g, b, 1)
}

// ClearRGBA sets every pixel to (r, g, b, a). Formats without alpha store
// the color composited over black.
func (c *Canvas) ClearRGBA(r, g, b, a float64) {
	rb, gb, bb, ab := NewRGBA(r, g, b, a).bytes()
	c.img.buf.Fill(rb, gb, bb, ab)
}

// DrawShape fills and/or strokes p, mapped to device space by xf.
//
// The path is flattened once in user space. The fill pass rasterizes the
// transformed polygons with the nonzero or even-odd rule. The stroke pass
// dashes and expands the polylines with the user-space pen and rasterizes
// the transformed outline with the nonzero rule. Each pass is painted with
// its own paint; fillPaint may be nil when gs.DrawingMode does not fill,
// and strokePaint may be nil when it does not stroke.
//
// Geometry outside the image is clipped silently. A transform that
// collapses the plane draws nothing. A transform that maps a point of the
// path outside the finite range returns ErrInvalidGeometry.
func (c *Canvas) DrawShape(p *Path, xf Transform, fillPaint, strokePaint Paint, gs GraphicsState) error {
	if p == nil {
		return fmt.Errorf("%w: nil path", ErrInvalidGeometry)
	}
	if !xf.IsFinite() {
		return fmt.Errorf("%w: non-finite transform %v", ErrInvalidGeometry, xf)
	}
	if err := p.validate(); err != nil {
		return err
	}
	if err := gs.validate(); err != nil {
		return err
	}
	mode := gs.DrawingMode
	if mode.fills() {
		if err := validatePaint(fillPaint); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	if mode.strokes() {
		if err := validatePaint(strokePaint); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	if err := c.checkStencil(gs.Stencil); err != nil {
		return err
	}
	if mode == DrawInvisible || p.Len() == 0 {
		return nil
	}

	scale := xf.MaxScale()
	if !(scale > 0) || math.IsInf(scale, 0) {
		Logger().Warn("agg: skipping draw with degenerate transform", "transform", xf)
		return nil
	}
	tol := c.opts.tolerance / scale
	subpaths := p.flatten(tol)
	for _, sp := range subpaths {
		if err := deviceFinite(sp.Points, xf); err != nil {
			return err
		}
	}

	if !c.setClip(gs.ClipBox) {
		return nil
	}
	comp := newCompositor(c.img.buf, gs.BlendMode.mode(), c.gamma(gs), gs.Stencil)
	alpha := icolor.Clamp(gs.MasterAlpha, 0, 1)
	edges := 0

	if mode.fills() {
		rule := raster.NonZero
		if mode.evenOdd() {
			rule = raster.EvenOdd
		}
		c.ras.Reset()
		for _, sp := range subpaths {
			c.addPolygon(sp.Points, xf)
		}
		edges += c.ras.EdgeCount()
		c.sweep(comp, rule, newSampler(fillPaint, xf, subpaths, alpha))
	}

	if mode.strokes() && gs.LineWidth > 0 {
		lines := subpaths
		if len(gs.Dashes) > 0 {
			lines = stroke.Dash(lines, gs.Dashes, gs.DashPhase)
		}
		exp := stroke.NewStrokeExpander(gs.pen())
		exp.SetTolerance(tol)
		c.ras.Reset()
		for _, ring := range exp.Expand(lines) {
			if err := deviceFinite(ring, xf); err != nil {
				return fmt.Errorf("stroke: %w", err)
			}
			c.addPolygon(ring, xf)
		}
		edges += c.ras.EdgeCount()
		c.sweep(comp, raster.NonZero, newSampler(strokePaint, xf, subpaths, alpha))
	}

	Logger().Debug("agg: draw shape",
		"mode", mode,
		"subpaths", len(subpaths),
		"edges", edges,
		"spans", comp.spans,
	)
	return nil
}

// checkStencil verifies the stencil format and, in strict mode, its size.
func (c *Canvas) checkStencil(st *Image) error {
	if st == nil {
		return nil
	}
	if st.buf == nil {
		return fmt.Errorf("%w: stencil has no buffer", ErrInvalidBuffer)
	}
	if f := st.Format(); f != FormatG8 && f != FormatGA16 {
		return fmt.Errorf("%w: stencil format %v", ErrUnsupportedFormat, f)
	}
	if c.opts.strict && (st.Width() != c.Width() || st.Height() != c.Height()) {
		return fmt.Errorf("%w: stencil %dx%d, canvas %dx%d",
			ErrDimensionMismatch, st.Width(), st.Height(), c.Width(), c.Height())
	}
	return nil
}

// setClip applies box, in device pixels, to the rasterizer. It reports
// false when nothing inside the image remains.
func (c *Canvas) setClip(box Rect) bool {
	w, h := c.Width(), c.Height()
	if box == (Rect{}) {
		c.ras.SetClip(0, 0, w, h)
		return true
	}
	x0 := clipCoord(math.Floor(box.X0), w)
	y0 := clipCoord(math.Floor(box.Y0), h)
	x1 := clipCoord(math.Ceil(box.X1), w)
	y1 := clipCoord(math.Ceil(box.Y1), h)
	if x1 <= x0 || y1 <= y0 {
		return false
	}
	c.ras.SetClip(x0, y0, x1, y1)
	return true
}

func clipCoord(v float64, limit int) int {
	return int(icolor.Clamp(v, 0, float64(limit)))
}

// gamma returns the coverage table for gs, reusing the last power table.
func (c *Canvas) gamma(gs GraphicsState) *icolor.GammaTable {
	if !gs.AntiAliased {
		return c.threshold
	}
	if gs.AntiAliasGamma != c.gammaValue {
		c.gammaValue = gs.AntiAliasGamma
		c.gammaTable = icolor.NewGammaPower(gs.AntiAliasGamma)
	}
	return c.gammaTable
}

// deviceFinite returns ErrInvalidGeometry when a point of pts is not
// finite once mapped through xf.
func deviceFinite(pts []path.Point, xf Transform) error {
	for _, p := range pts {
		if d := xf.TransformPoint(Point{X: p.X, Y: p.Y}); !d.IsFinite() {
			return fmt.Errorf("%w: (%g, %g) maps to (%g, %g)", ErrInvalidGeometry, p.X, p.Y, d.X, d.Y)
		}
	}
	return nil
}

// addPolygon transforms pts to device space and adds them as a closed
// polygon.
func (c *Canvas) addPolygon(pts []path.Point, xf Transform) {
	if len(pts) < 2 {
		return
	}
	c.pts = c.pts[:0]
	for _, p := range pts {
		d := xf.TransformPoint(Point{X: p.X, Y: p.Y})
		c.pts = append(c.pts, raster.Point{X: d.X, Y: d.Y})
	}
	c.ras.AddPolygon(c.pts)
}

func (c *Canvas) sweep(comp *compositor, rule raster.FillRule, src sampler) {
	if src == nil || c.ras.EdgeCount() == 0 {
		return
	}
	comp.src = src
	c.ras.Sweep(rule, comp.blendSpans)
}
