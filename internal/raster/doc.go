// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts device-space polygons into anti-aliased coverage
// spans.
//
// Each polygon edge deposits its exact signed area into two per-cell
// buffers for the scanline it crosses: cover (the winding it adds to every
// pixel on its right) and area (the part of that winding inside the cell it
// passes through). Integrating cover from left to right yields the winding
// number of each pixel as a fraction, which the fill rule maps to coverage.
// Edges shared by two polygons therefore sum to full coverage with no seam.
//
// The sweep walks an active edge list top to bottom over the clip rows only,
// so the cost is proportional to edges times rows plus touched cells.
package raster
