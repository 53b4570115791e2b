// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"cmp"
	"math"
	"slices"

	"github.com/chewxy/math32"

	"github.com/gogpu/agg/internal/color"
)

// FillRule selects how winding numbers map to coverage.
type FillRule uint8

const (
	// NonZero covers every point with a non-zero winding number.
	NonZero FillRule = iota
	// EvenOdd covers points with an odd winding number.
	EvenOdd
)

// Span is a run of pixels [X0, X1) on one scanline with equal coverage.
// Cover is the coverage fraction scaled to 0..255.
type Span struct {
	X0, X1 int
	Cover  uint8
}

// Fraction returns the coverage of the span in [0, 1].
func (s Span) Fraction() float32 { return float32(s.Cover) / 255 }

// Rasterizer accumulates polygon edges and sweeps them into spans.
// Its buffers are reused across Reset calls. It is not safe for concurrent
// use.
type Rasterizer struct {
	width, height int

	// clip rectangle in device pixels
	cx0, cy0, cx1, cy1 int

	edges  []edge
	active []int
	cover  []float32
	area   []float32
	spans  []Span

	minY, maxY float64
}

// New returns a rasterizer for a device of the given size, with the clip
// set to the whole device.
func New(width, height int) *Rasterizer {
	r := &Rasterizer{width: max(width, 0), height: max(height, 0)}
	r.SetClip(0, 0, width, height)
	r.Reset()
	return r
}

// SetClip restricts output to [x0, x1) × [y0, y1), intersected with the
// device bounds. It applies to edges added afterwards.
func (r *Rasterizer) SetClip(x0, y0, x1, y1 int) {
	r.cx0 = color.Clamp(x0, 0, r.width)
	r.cy0 = color.Clamp(y0, 0, r.height)
	r.cx1 = color.Clamp(x1, r.cx0, r.width)
	r.cy1 = color.Clamp(y1, r.cy0, r.height)
	if w := r.cx1 - r.cx0; cap(r.cover) < w+1 {
		r.cover = make([]float32, w+1)
		r.area = make([]float32, w+1)
	}
}

// Clip returns the current clip rectangle.
func (r *Rasterizer) Clip() (x0, y0, x1, y1 int) {
	return r.cx0, r.cy0, r.cx1, r.cy1
}

// Reset discards all edges.
func (r *Rasterizer) Reset() {
	r.edges = r.edges[:0]
	r.minY = math.Inf(1)
	r.maxY = math.Inf(-1)
}

// EdgeCount returns the number of edges kept for the next sweep.
func (r *Rasterizer) EdgeCount() int { return len(r.edges) }

// AddLine adds the edge a→b. Horizontal edges, non-finite edges and edges
// that cannot affect the clip rectangle are dropped. Edges left of the
// clip are kept because they carry winding.
func (r *Rasterizer) AddLine(a, b Point) {
	if a.Y == b.Y || !finite(a) || !finite(b) {
		return
	}
	e := newEdge(a, b)
	if e.y1 <= float64(r.cy0) || e.y0 >= float64(r.cy1) {
		return
	}
	if min(a.X, b.X) >= float64(r.cx1) {
		return
	}
	r.edges = append(r.edges, e)
	r.minY = min(r.minY, e.y0)
	r.maxY = max(r.maxY, e.y1)
}

// AddPolygon adds a closed polygon through pts. The closing edge is
// implicit.
func (r *Rasterizer) AddPolygon(pts []Point) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.AddLine(pts[i-1], pts[i])
	}
	r.AddLine(pts[len(pts)-1], pts[0])
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Sweep converts the accumulated edges into coverage spans, calling emit
// once per scanline that has at least one span, in increasing y. The span
// slice is reused and must not be retained after emit returns.
func (r *Rasterizer) Sweep(rule FillRule, emit func(y int, spans []Span)) {
	if len(r.edges) == 0 || r.cx0 >= r.cx1 {
		return
	}
	slices.SortFunc(r.edges, func(a, b edge) int { return cmp.Compare(a.y0, b.y0) })

	yStart := int(max(float64(r.cy0), math.Floor(r.minY)))
	yEnd := int(min(float64(r.cy1), math.Ceil(r.maxY)))
	width := r.cx1 - r.cx0
	cover := r.cover[:width+1]
	area := r.area[:width+1]

	next := 0
	r.active = r.active[:0]
	for y := yStart; y < yEnd; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		keep := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].y1 > top {
				keep = append(keep, i)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		lo, hi := width, -1
		for _, i := range r.active {
			e := &r.edges[i]
			ya, yb := max(e.y0, top), min(e.y1, bot)
			if yb <= ya {
				continue
			}
			xa := e.xAt(ya) - float64(r.cx0)
			xb := e.xAt(yb) - float64(r.cx0)
			c0, c1 := accumulate(cover, area, width, xa, xb, yb-ya, e.dir)
			lo, hi = min(lo, c0), max(hi, c1)
		}
		if hi < lo {
			continue
		}

		r.spans = integrate(r.spans[:0], cover, area, lo, hi, width, r.cx0, rule)
		clear(cover[lo : hi+1])
		clear(area[lo : hi+1])
		if len(r.spans) > 0 {
			emit(y, r.spans)
		}
	}
}

// accumulate deposits one edge piece lying inside a single scanline into
// the cell buffers. x coordinates are relative to the clip's left side and
// dy is the piece's height. It returns the range of cells it touched, or
// an empty range (c0 > c1) when it touched none.
func accumulate(cover, area []float32, width int, xa, xb, dy float64, dir float32) (c0, c1 int) {
	w := float64(width)
	xl, xr := min(xa, xb), max(xa, xb)

	if xr-xl < 1e-12 {
		switch {
		case xl >= w:
			return width, -1
		case xl < 0:
			s := float32(dy) * dir
			cover[0] += s
			area[0] += s
			return 0, 0
		}
		c := int(xl)
		s := float32(dy) * dir
		cover[c] += s
		area[c] += s * float32(float64(c+1)-xl)
		return c, c
	}

	k := dy / (xr - xl)
	c0, c1 = width, -1
	if xl < 0 {
		s := float32(k*(min(xr, 0)-xl)) * dir
		cover[0] += s
		area[0] += s
		c0, c1 = 0, 0
		if xr <= 0 {
			return c0, c1
		}
		xl = 0
	}
	if xl >= w {
		return c0, c1
	}
	xr = min(xr, w)

	first := int(xl)
	last := min(int(math.Ceil(xr))-1, width-1)
	for c := first; c <= last; c++ {
		a := max(xl, float64(c))
		b := min(xr, float64(c+1))
		if b <= a {
			continue
		}
		s := float32(k*(b-a)) * dir
		cover[c] += s
		area[c] += s * float32(float64(c+1)-(a+b)/2)
	}
	return min(c0, first), max(c1, last)
}

// integrate turns the cells lo..hi into spans. Past hi the winding is
// constant, so at most one more span reaches the clip's right side.
func integrate(spans []Span, cover, area []float32, lo, hi, width, x0 int, rule FillRule) []Span {
	var accum float32
	run := Span{X0: -1}
	push := func(x int, c uint8) {
		if run.X0 >= 0 && run.Cover == c && run.X1 == x {
			run.X1 = x + 1
			return
		}
		if run.X0 >= 0 && run.Cover > 0 {
			spans = append(spans, run)
		}
		run = Span{X0: x, X1: x + 1, Cover: c}
	}
	for c := lo; c <= hi; c++ {
		push(x0+c, quantize(accum+area[c], rule))
		accum += cover[c]
	}
	if hi+1 < width {
		if tail := quantize(accum, rule); tail > 0 {
			push(x0+hi+1, tail)
			run.X1 = x0 + width
		}
	}
	if run.X0 >= 0 && run.Cover > 0 {
		spans = append(spans, run)
	}
	return spans
}

// quantize applies the fill rule to a fractional winding number.
func quantize(w float32, rule FillRule) uint8 {
	a := math32.Abs(w)
	if rule == EvenOdd {
		a = math32.Mod(a, 2)
		if a > 1 {
			a = 2 - a
		}
	}
	return color.Unit(math32.Min(a, 1))
}
