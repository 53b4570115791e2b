// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Point is a device-space position.
type Point struct {
	X, Y float64
}

// edge is a non-horizontal polygon edge stored top to bottom.
type edge struct {
	x0, y0 float64
	y1     float64
	dxdy   float64
	dir    float32 // +1 if the original edge went down, -1 if up
}

// xAt returns the edge's x coordinate at scanline position y.
func (e *edge) xAt(y float64) float64 {
	if y == e.y0 {
		return e.x0
	}
	return e.x0 + (y-e.y0)*e.dxdy
}

func newEdge(a, b Point) edge {
	dir := float32(1)
	if b.Y < a.Y {
		a, b = b, a
		dir = -1
	}
	return edge{
		x0:   a.X,
		y0:   a.Y,
		y1:   b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		dir:  dir,
	}
}
