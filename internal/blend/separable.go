package blend

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/agg/internal/color"
)

// separable applies the W3C compositing formula
//
//	Co = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb)
//
// where S and D are premultiplied and B works on unpremultiplied channels.
func separable(sr, sg, sb, sa, dr, dg, db, da byte, mix func(cs, cb float32) float32) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	saf := float32(sa) / 255
	daf := float32(da) / 255
	ch := func(s, d byte) byte {
		sc := float32(s) / 255
		dc := float32(d) / 255
		b := mix(math32.Min(sc/saf, 1), math32.Min(dc/daf, 1))
		return color.Unit((1-saf)*dc + (1-daf)*sc + saf*daf*b)
	}
	a := sa + da - mulDiv255(sa, da)
	return ch(sr, dr), ch(sg, dg), ch(sb, db), a
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		return s * d
	})
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, screen)
}

func screen(s, d float32) float32 { return s + d - s*d }

func hardLight(s, d float32) float32 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return screen(2*s-1, d)
}

func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		return hardLight(d, s)
	})
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLight)
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, math32.Min)
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, math32.Max)
}

func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		switch {
		case d == 0:
			return 0
		case s >= 1:
			return 1
		}
		return math32.Min(1, d/(1-s))
	})
}

func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		switch {
		case d >= 1:
			return 1
		case s <= 0:
			return 0
		}
		return 1 - math32.Min(1, (1-d)/s)
	})
}

func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		if s <= 0.5 {
			return d - (1-2*s)*d*(1-d)
		}
		var dd float32
		if d <= 0.25 {
			dd = ((16*d-12)*d + 4) * d
		} else {
			dd = math32.Sqrt(d)
		}
		return d + (2*s-1)*(dd-d)
	})
}

func blendDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		return math32.Abs(s - d)
	})
}

func blendExclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d float32) float32 {
		return s + d - 2*s*d
	})
}
