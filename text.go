package agg

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Face is a TrueType or OpenType font at a fixed pixel size. It keeps a
// glyph loading buffer and is not safe for concurrent use.
type Face struct {
	font *sfnt.Font
	size float64
	ppem fixed.Int26_6
	buf  sfnt.Buffer
}

// NewFace parses font data and prepares it for size pixels per em.
func NewFace(data []byte, size float64) (*Face, error) {
	if !(size > 0) || !isFinite(size) {
		return nil, fmt.Errorf("%w: font size %g", ErrInvalidGeometry, size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("agg: parse font: %w", err)
	}
	return &Face{font: f, size: size, ppem: fixed.Int26_6(size * 64)}, nil
}

// Size returns the size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the ascent, descent and line height in pixels.
func (f *Face) Metrics() (ascent, descent, height float64, err error) {
	m, err := f.font.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("agg: font metrics: %w", err)
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent), fromFixed(m.Height), nil
}

// Text appends the outlines of s, set in face with its baseline starting
// at (x, y), and returns the horizontal advance. The string is normalized
// to NFC before glyph lookup, and pair kerning is applied where the font
// has it. Glyphs are placed one after another without shaping.
func (p *Path) Text(face *Face, s string, x, y float64) (float64, error) {
	if face == nil {
		return 0, fmt.Errorf("%w: nil face", ErrInvalidGeometry)
	}
	if !isFinite(x) || !isFinite(y) {
		return 0, fmt.Errorf("%w: text origin (%g, %g)", ErrInvalidGeometry, x, y)
	}
	var (
		pen  fixed.Int26_6
		prev sfnt.GlyphIndex
		have bool
	)
	for _, r := range norm.NFC.String(s) {
		gid, err := face.font.GlyphIndex(&face.buf, r)
		if err != nil {
			return 0, fmt.Errorf("agg: glyph for %q: %w", r, err)
		}
		if have {
			if k, err := face.font.Kern(&face.buf, prev, gid, face.ppem, font.HintingNone); err == nil {
				pen += k
			}
		}
		if err := p.glyph(face, gid, x+fromFixed(pen), y); err != nil {
			return 0, err
		}
		adv, err := face.font.GlyphAdvance(&face.buf, gid, face.ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("agg: advance for %q: %w", r, err)
		}
		pen += adv
		prev, have = gid, true
	}
	return fromFixed(pen), nil
}

// glyph appends one glyph outline with its origin at (x, y).
func (p *Path) glyph(face *Face, gid sfnt.GlyphIndex, x, y float64) error {
	segs, err := face.font.LoadGlyph(&face.buf, gid, face.ppem, nil)
	if errors.Is(err, sfnt.ErrColoredGlyph) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("agg: load glyph %d: %w", gid, err)
	}
	pt := func(a fixed.Point26_6) (float64, float64) {
		return x + fromFixed(a.X), y + fromFixed(a.Y)
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			ex, ey := pt(seg.Args[1])
			p.QuadraticTo(cx, cy, ex, ey)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
		}
	}
	if open {
		p.Close()
	}
	return nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
