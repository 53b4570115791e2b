package agg

import (
	"image/color"

	icolor "github.com/gogpu/agg/internal/color"
)

// RGBA is a straight (non-premultiplied) color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Color converts c to a color.NRGBA, clamping each component.
func (c RGBA) Color() color.Color {
	r, g, b, a := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Hex creates a color from a hex string in one of the forms "RGB",
// "RGBA", "RRGGBB" or "RRGGBBAA", with an optional leading '#'. Malformed
// input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	var v [4]uint32
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return RGB(0, 0, 0)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return RGB(0, 0, 0)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return RGB(0, 0, 0)
	}
	return RGBA{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
		A: float64(v[3]) / 255,
	}
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// IsFinite reports whether every component is finite.
func (c RGBA) IsFinite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && isFinite(c.A)
}

// bytes returns the straight 8-bit components, clamped and rounded.
func (c RGBA) bytes() (r, g, b, a uint8) {
	return icolor.Unit(c.R), icolor.Unit(c.G), icolor.Unit(c.B), icolor.Unit(c.A)
}

// premul returns the premultiplied 8-bit components of c with its alpha
// scaled by alpha.
func (c RGBA) premul(alpha float64) (r, g, b, a uint8) {
	ca := icolor.Clamp(c.A, 0, 1) * icolor.Clamp(alpha, 0, 1)
	return icolor.Unit(icolor.Clamp(c.R, 0, 1) * ca),
		icolor.Unit(icolor.Clamp(c.G, 0, 1) * ca),
		icolor.Unit(icolor.Clamp(c.B, 0, 1) * ca),
		icolor.Unit(ca)
}
