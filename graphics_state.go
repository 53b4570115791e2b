package agg

import (
	"fmt"
	"math"

	"github.com/gogpu/agg/internal/blend"
	"github.com/gogpu/agg/internal/stroke"
)

// DrawingMode selects the passes DrawShape performs. The values are bit
// flags: DrawFill and DrawStroke may be combined, and drawEvenOdd switches
// the fill rule.
type DrawingMode uint8

const (
	drawFillBit DrawingMode = 1 << iota
	drawStrokeBit
	drawEvenOdd
)

const (
	// DrawInvisible draws nothing.
	DrawInvisible DrawingMode = 0
	// DrawFill fills with the nonzero winding rule.
	DrawFill = drawFillBit
	// DrawEofFill fills with the even-odd rule.
	DrawEofFill = drawFillBit | drawEvenOdd
	// DrawStroke strokes the outline.
	DrawStroke = drawStrokeBit
	// DrawFillStroke fills with the nonzero rule, then strokes.
	DrawFillStroke = drawFillBit | drawStrokeBit
	// DrawEofFillStroke fills with the even-odd rule, then strokes.
	DrawEofFillStroke = drawFillBit | drawStrokeBit | drawEvenOdd
)

func (m DrawingMode) fills() bool   { return m&drawFillBit != 0 }
func (m DrawingMode) strokes() bool { return m&drawStrokeBit != 0 }
func (m DrawingMode) evenOdd() bool { return m&drawEvenOdd != 0 }

// LineCap specifies the shape of open line endpoints.
type LineCap uint8

const (
	// CapButt ends the stroke flush with the endpoint.
	CapButt LineCap = iota
	// CapRound adds a half disc.
	CapRound
	// CapSquare extends the stroke by half its width.
	CapSquare
)

// LineJoin specifies the shape of stroke corners.
type LineJoin uint8

const (
	// JoinMiter extends the outer edges until they meet. Beyond the miter
	// limit it falls back to a bevel.
	JoinMiter LineJoin = iota
	// JoinRound adds a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

// BlendMode selects how source pixels combine with the destination.
type BlendMode uint8

const (
	// BlendAlpha is plain alpha blending, the same as BlendSrcOver.
	BlendAlpha BlendMode = iota
	BlendClear
	BlendSrc
	BlendDst
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcAtop
	BlendDstAtop
	BlendXor
	BlendAdd
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	blendModeCount
)

// mode maps the public blend mode onto the compositing operator. The
// constants after BlendAlpha follow the operator order one to one.
func (m BlendMode) mode() blend.Mode {
	if m == BlendAlpha {
		return blend.ModeSrcOver
	}
	return blend.Mode(m - 1)
}

func (m BlendMode) String() string {
	if m >= blendModeCount {
		return fmt.Sprintf("BlendMode(%d)", m)
	}
	if m == BlendAlpha {
		return "alpha"
	}
	return m.mode().String()
}

// Rect is an axis-aligned rectangle from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns X1 - X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool { return !(r.X1 > r.X0 && r.Y1 > r.Y0) }

// GraphicsState holds the per-call drawing parameters. It is passed by
// value; the canvas keeps no reference to it, but it does read Stencil
// and Dashes during the call.
type GraphicsState struct {
	DrawingMode DrawingMode

	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64

	// Dashes alternates on and off lengths in user space. An odd count is
	// repeated once. A nil or all-zero slice draws solid lines.
	Dashes    []float64
	DashPhase float64

	// Stencil, when set, scales coverage by its gray value at the same
	// device pixel. It must be FormatG8 or FormatGA16.
	Stencil *Image

	BlendMode   BlendMode
	MasterAlpha float64

	AntiAliased    bool
	AntiAliasGamma float64

	// ClipBox limits drawing to a device-space rectangle. The zero Rect
	// means the whole canvas.
	ClipBox Rect
}

// DefaultGraphicsState returns the default state: fill and stroke, a
// one unit wide line with square caps and miter joins, alpha blending,
// full master alpha and anti-aliasing with gamma 1.
func DefaultGraphicsState() GraphicsState {
	return GraphicsState{
		DrawingMode:    DrawFillStroke,
		LineWidth:      1,
		LineCap:        CapSquare,
		LineJoin:       JoinMiter,
		MiterLimit:     4,
		BlendMode:      BlendAlpha,
		MasterAlpha:    1,
		AntiAliased:    true,
		AntiAliasGamma: 1,
	}
}

func (gs *GraphicsState) validate() error {
	if gs.DrawingMode > DrawEofFillStroke {
		return fmt.Errorf("%w: drawing mode %d", ErrInvalidGeometry, gs.DrawingMode)
	}
	if gs.DrawingMode.strokes() {
		if !isFinite(gs.LineWidth) || gs.LineWidth < 0 {
			return fmt.Errorf("%w: line width %g", ErrInvalidGeometry, gs.LineWidth)
		}
		if gs.LineCap > CapSquare || gs.LineJoin > JoinBevel {
			return fmt.Errorf("%w: line cap %d, join %d", ErrInvalidGeometry, gs.LineCap, gs.LineJoin)
		}
		if math.IsNaN(gs.MiterLimit) {
			return fmt.Errorf("%w: miter limit is NaN", ErrInvalidGeometry)
		}
		for i, d := range gs.Dashes {
			if !isFinite(d) || d < 0 {
				return fmt.Errorf("%w: dash %d is %g", ErrInvalidGeometry, i, d)
			}
		}
		if !isFinite(gs.DashPhase) {
			return fmt.Errorf("%w: dash phase %g", ErrInvalidGeometry, gs.DashPhase)
		}
	}
	if gs.ClipBox != (Rect{}) {
		c := gs.ClipBox
		if math.IsNaN(c.X0) || math.IsNaN(c.Y0) || math.IsNaN(c.X1) || math.IsNaN(c.Y1) {
			return fmt.Errorf("%w: clip box is NaN", ErrInvalidGeometry)
		}
	}
	if !isFinite(gs.MasterAlpha) {
		return fmt.Errorf("%w: master alpha %g", ErrInvalidPaint, gs.MasterAlpha)
	}
	if gs.BlendMode >= blendModeCount {
		return fmt.Errorf("%w: blend mode %d", ErrInvalidPaint, gs.BlendMode)
	}
	return nil
}

// pen converts the stroke fields into the expander's description.
func (gs *GraphicsState) pen() stroke.Stroke {
	limit := gs.MiterLimit
	if !(limit >= 1) {
		limit = 1
	}
	return stroke.Stroke{
		Width:      gs.LineWidth,
		Cap:        stroke.LineCap(gs.LineCap),
		Join:       stroke.LineJoin(gs.LineJoin),
		MiterLimit: limit,
	}
}
