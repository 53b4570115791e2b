package agg

import (
	"github.com/gogpu/agg/internal/blend"
	icolor "github.com/gogpu/agg/internal/color"
	"github.com/gogpu/agg/internal/pixfmt"
	"github.com/gogpu/agg/internal/raster"
)

// compositor blends sampled source pixels into the canvas buffer along
// rasterizer spans. Each covered pixel becomes
//
//	dst' = lerp(dst, blend(src, dst), gamma[cover] · stencil)
//
// which equals source-over of the coverage-scaled source for the default
// mode and keeps edges anti-aliased for modes that replace the
// destination.
type compositor struct {
	buf     *pixfmt.Buffer
	format  pixfmt.Format
	bpp     int
	gray    bool
	fn      blend.Func
	srcOver bool
	gamma   *icolor.GammaTable
	stencil *Image

	src sampler

	spans int
}

func newCompositor(buf *pixfmt.Buffer, mode blend.Mode, gamma *icolor.GammaTable, stencil *Image) *compositor {
	f := buf.Format()
	return &compositor{
		buf:     buf,
		format:  f,
		bpp:     f.BytesPerPixel(),
		gray:    f.IsGray(),
		fn:      mode.Func(),
		srcOver: mode == blend.ModeSrcOver,
		gamma:   gamma,
		stencil: stencil,
	}
}

// blendSpans is the emit callback for raster.Rasterizer.Sweep.
func (c *compositor) blendSpans(y int, spans []raster.Span) {
	row := c.buf.Row(y)
	for _, sp := range spans {
		c.spans++
		cov := c.gamma[sp.Cover]
		if cov == 0 {
			continue
		}
		for x := sp.X0; x < sp.X1; x++ {
			k := cov
			if c.stencil != nil {
				k = blend.MulDiv255(k, c.stencil.stencilAt(x, y))
				if k == 0 {
					continue
				}
			}
			c.blendPixel(row[x*c.bpp:(x+1)*c.bpp], x, y, k)
		}
	}
}

func (c *compositor) blendPixel(px []byte, x, y int, cov byte) {
	sr, sg, sb, sa := c.src.at(x, y)
	if c.gray {
		l := icolor.Luma(sr, sg, sb)
		sr, sg, sb = l, l, l
	}
	if c.srcOver && sa == 255 && cov == 255 {
		c.format.Store(px, sr, sg, sb, 255)
		return
	}
	dr, dg, db, da := c.format.Load(px)
	br, bg, bb, ba := c.fn(sr, sg, sb, sa, dr, dg, db, da)
	c.format.Store(px,
		blend.Lerp(dr, br, cov),
		blend.Lerp(dg, bg, cov),
		blend.Lerp(db, bb, cov),
		blend.Lerp(da, ba, cov),
	)
}
