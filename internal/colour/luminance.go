package colour

import "math"

// Luminance calculates the relative luminance of a normalized colour
// according to WCAG 2.0. Returns a value between 0 (darkest) and 1
// (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(hex string) float64 {
	return LuminanceRGB(HexToRGB(hex))
}

// LuminanceRGB calculates the relative luminance of an RGB colour.
func LuminanceRGB(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	// Combine with the WCAG channel weights.
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearizes an sRGB colour component in [0,1].
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
