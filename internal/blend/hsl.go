package blend

import "github.com/gogpu/agg/internal/color"

// lum returns the luminosity of a color with the W3C weights.
func lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// sat returns max(r, g, b) - min(r, g, b).
func sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor pulls out-of-range components towards the luminosity.
func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float32) (float32, float32, float32) {
	lo, mid, hi := sortRGB(&r, &g, &b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid, *hi = 0, 0
	}
	*lo = 0
	return r, g, b
}

// sortRGB returns pointers to the smallest, middle and largest component.
func sortRGB(r, g, b *float32) (lo, mid, hi *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// nonSeparable is the compositing formula of separable with a mixing
// function over the whole RGB triple.
func nonSeparable(
	sr, sg, sb, sa, dr, dg, db, da byte,
	mix func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32),
) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	saf := float32(sa) / 255
	daf := float32(da) / 255
	s := [3]float32{float32(sr) / 255, float32(sg) / 255, float32(sb) / 255}
	d := [3]float32{float32(dr) / 255, float32(dg) / 255, float32(db) / 255}
	mr, mg, mb := mix(
		min(s[0]/saf, 1), min(s[1]/saf, 1), min(s[2]/saf, 1),
		min(d[0]/daf, 1), min(d[1]/daf, 1), min(d[2]/daf, 1),
	)
	m := [3]float32{mr, mg, mb}
	var out [3]byte
	for i := range out {
		out[i] = color.Unit((1-saf)*d[i] + (1-daf)*s[i] + saf*daf*m[i])
	}
	return out[0], out[1], out[2], sa + da - mulDiv255(sa, da)
}

func blendHue(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		r, g, b := setSat(sr, sg, sb, sat(dr, dg, db))
		return setLum(r, g, b, lum(dr, dg, db))
	})
}

func blendSaturation(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		r, g, b := setSat(dr, dg, db, sat(sr, sg, sb))
		return setLum(r, g, b, lum(dr, dg, db))
	})
}

func blendColor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		return setLum(sr, sg, sb, lum(dr, dg, db))
	})
}

func blendLuminosity(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparable(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		return setLum(dr, dg, db, lum(sr, sg, sb))
	})
}
