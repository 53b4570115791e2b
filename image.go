package agg

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/agg/internal/blend"
	"github.com/gogpu/agg/internal/pixfmt"
)

// PixelFormat identifies the layout of an Image's pixels.
type PixelFormat uint8

const (
	// FormatG8 is 8-bit gray, one byte per pixel.
	FormatG8 = PixelFormat(pixfmt.FormatG8)
	// FormatGA16 is 8-bit gray followed by 8-bit alpha.
	FormatGA16 = PixelFormat(pixfmt.FormatGA16)
	// FormatRGB24 is 8-bit R, G, B.
	FormatRGB24 = PixelFormat(pixfmt.FormatRGB24)
	// FormatRGBA32 is 8-bit R, G, B, A with straight alpha.
	FormatRGBA32 = PixelFormat(pixfmt.FormatRGBA32)
)

func (f PixelFormat) internal() pixfmt.Format { return pixfmt.Format(f) }

// BytesPerPixel returns the pixel size, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int { return f.internal().BytesPerPixel() }

func (f PixelFormat) String() string { return f.internal().String() }

// Image describes a caller-owned pixel buffer. It never copies, resizes
// or reallocates the memory it wraps, so writes through a Canvas are
// visible in the slice passed to NewImage.
type Image struct {
	buf *pixfmt.Buffer
}

// NewImage wraps data as a width×height image with rows stride bytes
// apart. data must hold at least stride*(height-1) + width*bpp bytes.
//
// It returns ErrUnsupportedFormat for an unknown format and
// ErrInvalidBuffer for bad dimensions, stride or length.
func NewImage(data []byte, width, height, stride int, format PixelFormat) (*Image, error) {
	buf, err := pixfmt.FromRaw(data, width, height, stride, format.internal())
	if err != nil {
		if errors.Is(err, pixfmt.ErrInvalidFormat) {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
		}
		return nil, fmt.Errorf("%w: %dx%d stride %d, %d bytes: %w",
			ErrInvalidBuffer, width, height, stride, len(data), err)
	}
	return &Image{buf: buf}, nil
}

// Width returns the width in pixels.
func (m *Image) Width() int { return m.buf.Width() }

// Height returns the height in pixels.
func (m *Image) Height() int { return m.buf.Height() }

// Stride returns the distance between rows in bytes.
func (m *Image) Stride() int { return m.buf.Stride() }

// Format returns the pixel format.
func (m *Image) Format() PixelFormat { return PixelFormat(m.buf.Format()) }

// Data returns the wrapped memory.
func (m *Image) Data() []byte { return m.buf.Data() }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.buf.Width(), m.buf.Height())
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	switch m.Format() {
	case FormatG8:
		return color.GrayModel
	case FormatRGB24:
		return color.RGBAModel
	}
	return color.NRGBAModel
}

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	px := m.buf.Pixel(x, y)
	if px == nil {
		return color.NRGBA{}
	}
	switch m.Format() {
	case FormatG8:
		return color.Gray{Y: px[0]}
	case FormatGA16:
		return color.NRGBA{R: px[0], G: px[0], B: px[0], A: px[1]}
	case FormatRGB24:
		return color.RGBA{R: px[0], G: px[1], B: px[2], A: 255}
	}
	return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
}

// stencilAt returns the stencil value at (x, y), or 0 outside the image.
// Gray-alpha stencils multiply the two channels.
func (m *Image) stencilAt(x, y int) byte {
	px := m.buf.Pixel(x, y)
	if px == nil {
		return 0
	}
	if m.buf.Format() == pixfmt.FormatGA16 {
		return blend.MulDiv255(px[0], px[1])
	}
	return px[0]
}
