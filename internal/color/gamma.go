package color

import "math"

// GammaTable remaps 8-bit coverage before compositing.
type GammaTable [256]uint8

// identityGamma is shared by every caller that asks for gamma 1.
var identityGamma = func() *GammaTable {
	var t GammaTable
	for i := range t {
		t[i] = uint8(i)
	}
	return &t
}()

// IdentityGamma returns the table that leaves coverage unchanged.
// The returned table must not be modified.
func IdentityGamma() *GammaTable { return identityGamma }

// NewGammaPower builds a table for cover' = cover^g.
// Values of g that are not finite and positive, or equal to 1, yield the
// identity table.
func NewGammaPower(g float64) *GammaTable {
	if g == 1 || !(g > 0) || math.IsInf(g, 0) {
		return identityGamma
	}
	var t GammaTable
	for i := range t {
		t[i] = Unit(math.Pow(float64(i)/255, g))
	}
	// Keep the end points fixed so that full coverage stays exact.
	t[0], t[255] = 0, 255
	return &t
}

// NewGammaThreshold builds a table that snaps coverage to 0 or 255 around
// threshold, which is a fraction in [0,1]. It is used for aliased rendering.
func NewGammaThreshold(threshold float64) *GammaTable {
	cut := Clamp(threshold, 0, 1) * 255
	var t GammaTable
	for i := range t {
		if float64(i) >= cut && i > 0 {
			t[i] = 255
		}
	}
	return &t
}
