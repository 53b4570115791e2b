// Package agg is a software vector rasterizer that draws anti-aliased paths
// into caller-owned pixel buffers.
//
// # Overview
//
// agg turns paths made of lines, quadratic and cubic Béziers, rectangles,
// arcs and glyph outlines into exact-area coverage. The coverage is then
// composited onto an in-memory image with solid or gradient paint, one of
// the Porter-Duff or W3C blend modes, and an optional stencil mask. The
// buffer belongs to the caller: a Canvas never allocates, resizes or copies
// it.
//
// # Quick Start
//
//	data := make([]byte, 256*256*3)
//	img, _ := agg.NewImage(data, 256, 256, 256*3, agg.FormatRGB24)
//	c, _ := agg.NewCanvas(img)
//	c.Clear(1, 1, 1)
//
//	var p agg.Path
//	p.Rect(32, 32, 192, 192)
//
//	gs := agg.DefaultGraphicsState()
//	gs.DrawingMode = agg.DrawFill
//	_ = c.DrawShape(&p, agg.Identity(), agg.Solid(0.2, 0.4, 0.8), nil, gs)
//
// # Pipeline
//
// DrawShape flattens the path in user space, then fills and strokes it:
//   - fill: the polygons are transformed to device space and rasterized
//     with the nonzero or even-odd rule
//   - stroke: the polylines are dashed and expanded into outline polygons
//     in user space, then transformed and rasterized with the nonzero rule
//
// Each pass resolves its paint once into a device-space sampler and blends
// every covered pixel as
//
//	dst' = dst + (blend(src·alpha, dst) − dst)·coverage·stencil
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left corner of the buffer
//   - X increases right, Y increases down
//   - Pixel (x, y) covers the square [x, x+1) × [y, y+1); paints are
//     sampled at its centre
//   - Angles are in radians; positive angles turn from +X towards +Y
//
// # Concurrency
//
// A Canvas is single-threaded. Canvases over disjoint buffers may be used
// from different goroutines.
package agg
