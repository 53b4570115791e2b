package color

import "math"

// sRGBToLinearLUT maps an sRGB byte to linear light.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT maps linear light, quantized to 12 bits, to an sRGB byte.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = float32(SRGBToLinear(float64(i) / 255))
	}
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = Unit(LinearToSRGB(float64(i) / 4095))
	}
}

// SRGBToLinear applies the sRGB decoding curve to a [0,1] component.
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB encoding curve to a [0,1] component.
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinearFast converts an sRGB byte to linear light by table lookup.
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts linear light to an sRGB byte by table lookup.
// Input is clamped to [0, 1].
func LinearToSRGBFast(l float32) uint8 {
	l = Clamp(l, 0, 1)
	return linearToSRGBLUT[int(l*4095+0.5)]
}
