package blend

// div255 divides x by 255 with round-half-up. It is exact for every
// product of two bytes.
func div255(x uint32) uint32 {
	x += 128
	return (x + (x >> 8)) >> 8
}

// mulDiv255 returns round(a*b/255).
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addClamp adds two bytes, saturating at 255.
func addClamp(a, b byte) byte {
	if s := uint16(a) + uint16(b); s < 255 {
		return byte(s)
	}
	return 255
}

// Lerp moves d towards c by t/255. The result is exact at t == 0 and t == 255.
func Lerp(d, c, t byte) byte {
	switch t {
	case 0:
		return d
	case 255:
		return c
	}
	if c >= d {
		return d + mulDiv255(c-d, t)
	}
	return d - mulDiv255(d-c, t)
}

// MulDiv255 is the exported form of mulDiv255 for the compositor.
func MulDiv255(a, b byte) byte { return mulDiv255(a, b) }
