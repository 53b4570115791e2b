package agg

import "github.com/gogpu/agg/internal/path"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	c, err := agg.NewCanvas(img, agg.WithStrict(true), agg.WithTolerance(0.1))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	strict         bool
	tolerance      float64
	gammaThreshold float64
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		tolerance:      path.DefaultTolerance,
		gammaThreshold: 0.5,
	}
}

// WithStrict makes DrawShape reject stencils whose size differs from the
// canvas with ErrDimensionMismatch. Without it, pixels outside the stencil
// are masked out.
func WithStrict(strict bool) CanvasOption {
	return func(o *canvasOptions) {
		o.strict = strict
	}
}

// WithTolerance sets the maximum distance, in device pixels, between a
// curve and its flattened polyline. Non-positive values are ignored.
func WithTolerance(tol float64) CanvasOption {
	return func(o *canvasOptions) {
		if tol > 0 && isFinite(tol) {
			o.tolerance = tol
		}
	}
}

// WithGammaThreshold sets the coverage fraction at or above which a pixel
// counts as covered when anti-aliasing is off. The default is 0.5.
func WithGammaThreshold(threshold float64) CanvasOption {
	return func(o *canvasOptions) {
		if threshold >= 0 && threshold <= 1 {
			o.gammaThreshold = threshold
		}
	}
}
