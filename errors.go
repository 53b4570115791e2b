package agg

import "errors"

var (
	// ErrInvalidGeometry is returned for non-finite coordinates, transforms
	// or line widths, and for inverting a singular transform.
	ErrInvalidGeometry = errors.New("agg: invalid geometry")

	// ErrInvalidPaint is returned for malformed gradients and missing paints.
	ErrInvalidPaint = errors.New("agg: invalid paint")

	// ErrDimensionMismatch is returned in strict mode when a stencil does
	// not match the canvas size.
	ErrDimensionMismatch = errors.New("agg: dimension mismatch")

	// ErrUnsupportedFormat is returned for unknown pixel formats and for
	// stencils that are not grayscale.
	ErrUnsupportedFormat = errors.New("agg: unsupported format")

	// ErrInvalidBuffer is returned when a pixel buffer is too small for its
	// declared dimensions and stride.
	ErrInvalidBuffer = errors.New("agg: invalid buffer")
)
