package colorlab

import "math"

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116
)

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labUncompress(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (t - labOffset) / labKappa
}

// XYZToLab converts XYZ to L*a*b* using the D65 white point.
func XYZToLab(xyz XYZ) Lab {
	fx := labCompress(xyz.X / RefX)
	fy := labCompress(xyz.Y / RefY)
	fz := labCompress(xyz.Z / RefZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(lab Lab) XYZ {
	y := (lab.L + 16) / 116
	x := lab.A/500 + y
	z := y - lab.B/200
	return XYZ{
		X: labUncompress(x) * RefX,
		Y: labUncompress(y) * RefY,
		Z: labUncompress(z) * RefZ,
	}
}

// RGBToLab converts an sRGB colour to L*a*b*.
func RGBToLab(rgb RGB) Lab {
	return XYZToLab(RGBToXYZ(rgb))
}

// LabToRGB converts L*a*b* to the nearest sRGB colour. Lab values outside
// the sRGB gamut are clamped channel by channel.
func LabToRGB(lab Lab) RGB {
	return XYZToRGB(LabToXYZ(lab))
}

// Round rounds every coordinate to places decimals, see Round.
func (lab Lab) Round(places int) Lab {
	return Lab{Round(lab.L, places), Round(lab.A, places), Round(lab.B, places)}
}

// Chroma returns sqrt(a*² + b*²).
func (lab Lab) Chroma() float64 {
	return math.Hypot(lab.A, lab.B)
}

// Hue returns the hue angle in degrees in [0, 360). Neutral colours have hue 0.
func (lab Lab) Hue() float64 {
	return hueAngle(lab.A, lab.B)
}
