// Package pixfmt describes the pixel layouts a canvas can render into and
// converts between their stored bytes and premultiplied RGBA.
//
// Stored colors are straight (non-premultiplied). Formats without an alpha
// channel are always opaque.
package pixfmt

import (
	"github.com/gogpu/agg/internal/blend"
	"github.com/gogpu/agg/internal/color"
)

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatG8 is 8-bit grayscale.
	FormatG8 Format = iota

	// FormatGA16 is 8-bit gray followed by 8-bit alpha.
	FormatGA16

	// FormatRGB24 is 8-bit R, G, B.
	FormatRGB24

	// FormatRGBA32 is 8-bit R, G, B, A with straight alpha.
	FormatRGBA32

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	Name          string
	BytesPerPixel int
	HasAlpha      bool
	IsGray        bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatG8:     {Name: "G8", BytesPerPixel: 1, IsGray: true},
	FormatGA16:   {Name: "GA16", BytesPerPixel: 2, HasAlpha: true, IsGray: true},
	FormatRGB24:  {Name: "RGB24", BytesPerPixel: 3},
	FormatRGBA32: {Name: "RGBA32", BytesPerPixel: 4, HasAlpha: true},
}

// Info returns the FormatInfo for f, or the zero value for unknown formats.
func (f Format) Info() FormatInfo {
	if !f.IsValid() {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool { return f < formatCount }

// BytesPerPixel returns the pixel size in bytes.
func (f Format) BytesPerPixel() int { return f.Info().BytesPerPixel }

// HasAlpha reports whether f stores an alpha channel.
func (f Format) HasAlpha() bool { return f.Info().HasAlpha }

// IsGray reports whether f stores a single gray channel.
func (f Format) IsGray() bool { return f.Info().IsGray }

// RowBytes returns the number of bytes covered by width pixels.
func (f Format) RowBytes(width int) int { return width * f.BytesPerPixel() }

func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatInfoTable[f].Name
}

// Load returns the premultiplied color stored at px.
func (f Format) Load(px []byte) (r, g, b, a byte) {
	switch f {
	case FormatG8:
		return px[0], px[0], px[0], 255
	case FormatGA16:
		v := blend.MulDiv255(px[0], px[1])
		return v, v, v, px[1]
	case FormatRGB24:
		return px[0], px[1], px[2], 255
	case FormatRGBA32:
		a = px[3]
		if a == 255 {
			return px[0], px[1], px[2], 255
		}
		return blend.MulDiv255(px[0], a), blend.MulDiv255(px[1], a), blend.MulDiv255(px[2], a), a
	}
	return 0, 0, 0, 0
}

// Store writes a premultiplied color to px. Formats without alpha keep
// the color as composited over black.
func (f Format) Store(px []byte, r, g, b, a byte) {
	switch f {
	case FormatG8:
		px[0] = color.Luma(r, g, b)
	case FormatGA16:
		px[0], px[1] = Unpremultiply(color.Luma(r, g, b), a), a
	case FormatRGB24:
		px[0], px[1], px[2] = r, g, b
	case FormatRGBA32:
		if a == 0 {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 0
			return
		}
		px[0], px[1], px[2], px[3] = Unpremultiply(r, a), Unpremultiply(g, a), Unpremultiply(b, a), a
	}
}

// Pack writes a straight color to px without any blending.
func (f Format) Pack(px []byte, r, g, b, a byte) {
	switch f {
	case FormatG8:
		px[0] = color.Luma(blend.MulDiv255(r, a), blend.MulDiv255(g, a), blend.MulDiv255(b, a))
	case FormatGA16:
		px[0], px[1] = color.Luma(r, g, b), a
	case FormatRGB24:
		px[0], px[1], px[2] = blend.MulDiv255(r, a), blend.MulDiv255(g, a), blend.MulDiv255(b, a)
	case FormatRGBA32:
		px[0], px[1], px[2], px[3] = r, g, b, a
	}
}

// Unpremultiply returns round(c*255/a), saturated at 255.
func Unpremultiply(c, a byte) byte {
	switch a {
	case 0:
		return 0
	case 255:
		return c
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	return byte(color.Clamp(v, 0, 255))
}
