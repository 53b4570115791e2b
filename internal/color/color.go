// Package color provides the color math shared by the paint and compositing
// stages: sRGB transfer functions, coverage gamma tables and luminance.
package color

import "golang.org/x/exp/constraints"

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Unit converts a [0,1] component to a byte with round-half-up.
// Values outside the range saturate. NaN maps to 0.
func Unit[T constraints.Float](v T) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Luma returns the 8-bit luminance of an sRGB triple using the
// 77/150/29 integer weights. White maps to exactly 255.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*77 + uint32(g)*150 + uint32(b)*29) >> 8)
}
