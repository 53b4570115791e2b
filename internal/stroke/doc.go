// Package stroke converts flattened polylines into filled outline polygons.
//
// Stroke expansion builds two offset polylines per subpath: a forward one
// at -width/2 along the left normal and a backward one at +width/2. The
// outline of an open subpath is
//
//  1. the forward offset,
//  2. the end cap from the forward to the backward side,
//  3. the backward offset reversed,
//  4. the start cap back to the forward side.
//
// A closed subpath yields its forward offset and its reversed backward
// offset as two rings. Joins are added on the outer side of every vertex.
// The inner side passes through the vertex itself, which leaves small
// overlapping loops that the nonzero fill rule absorbs.
//
// The outlines must be filled with the nonzero rule.
//
// The algorithm follows tiny-skia's path/src/stroker.rs and kurbo's
// src/stroke.rs, specialised to polylines.
package stroke
