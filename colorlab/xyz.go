package colorlab

// sRGB primaries to XYZ under D65.
var rgbToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

var xyzToRGB = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

func mul(m *[3][3]float64, v0, v1, v2 float64) (float64, float64, float64) {
	return m[0][0]*v0 + m[0][1]*v1 + m[0][2]*v2,
		m[1][0]*v0 + m[1][1]*v1 + m[1][2]*v2,
		m[2][0]*v0 + m[2][1]*v1 + m[2][2]*v2
}

// RGBToXYZ converts sRGB to XYZ scaled so the white point has Y = 100.
func RGBToXYZ(rgb RGB) XYZ {
	x, y, z := mul(&rgbToXYZ, Decode(rgb.R), Decode(rgb.G), Decode(rgb.B))
	return XYZ{x * 100, y * 100, z * 100}
}

// XYZToRGB converts XYZ back to sRGB. The result is rounded and clamped, so
// colours outside the sRGB gamut come back as their nearest channel values.
func XYZToRGB(xyz XYZ) RGB {
	r, g, b := mul(&xyzToRGB, xyz.X/100, xyz.Y/100, xyz.Z/100)
	return RGB{Encode(r), Encode(g), Encode(b)}
}
