package pixfmt

import "errors"

var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixfmt: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixfmt: invalid format")

	// ErrInvalidStride is returned when stride is less than a row of pixels.
	ErrInvalidStride = errors.New("pixfmt: stride too small for width")

	// ErrDataTooSmall is returned when the data slice cannot hold the image.
	ErrDataTooSmall = errors.New("pixfmt: data buffer too small")
)

// Buffer is a view over caller-owned pixel memory.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// FromRaw wraps data without copying. The last row only needs width pixels,
// so data may be shorter than stride*height.
func FromRaw(data []byte, width, height, stride int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	row := format.RowBytes(width)
	if stride < row {
		return nil, ErrInvalidStride
	}
	if len(data) < stride*(height-1)+row {
		return nil, ErrDataTooSmall
	}
	return &Buffer{data: data, width: width, height: height, stride: stride, format: format}, nil
}

// Width returns the width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the distance between rows in bytes.
func (b *Buffer) Stride() int { return b.stride }

// Format returns the pixel format.
func (b *Buffer) Format() Format { return b.format }

// Data returns the underlying memory.
func (b *Buffer) Data() []byte { return b.data }

// Row returns the pixel bytes of row y, excluding stride padding.
func (b *Buffer) Row(y int) []byte {
	off := y * b.stride
	return b.data[off : off+b.format.RowBytes(b.width)]
}

// Pixel returns the bytes of the pixel at (x, y).
// It returns nil for coordinates outside the buffer.
func (b *Buffer) Pixel(x, y int) []byte {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return nil
	}
	bpp := b.format.BytesPerPixel()
	off := y*b.stride + x*bpp
	return b.data[off : off+bpp]
}

// Fill stores the straight color (r, g, b, a) into every pixel.
func (b *Buffer) Fill(r, g, bl, a byte) {
	bpp := b.format.BytesPerPixel()
	first := b.Row(0)
	b.format.Pack(first[:bpp], r, g, bl, a)
	for i := bpp; i < len(first); i *= 2 {
		copy(first[i:], first[:i])
	}
	for y := 1; y < b.height; y++ {
		copy(b.Row(y), first)
	}
}
