package colorlab

import "math"

// Decode linearizes an sRGB channel in [0, 255] to [0, 1].
func Decode(channel int) float64 {
	c := float64(channel) / 255
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Encode applies the sRGB transfer curve to a linear value and returns the
// nearest 8-bit channel. Out of gamut values are clamped to [0, 255].
func Encode(linear float64) int {
	var c float64
	if linear <= 0.0031308 {
		c = 12.92 * linear
	} else {
		c = 1.055*math.Pow(linear, 1/2.4) - 0.055
	}
	v := c * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return int(math.Round(v))
}

// Round rounds v to places decimals for display. Negative zero comes back as
// zero so tiny negative residues do not print as -0.00.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p)/p + 0
}
