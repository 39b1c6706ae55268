package colorlab

import "math"

// 25^7
const pow25to7 = 6103515625.0

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// hueAngle is atan2(b, a) in degrees, normalized to [0, 360). The hue of
// a = b = 0 is 0.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// DeltaE compares current against target. The signed components are plain
// differences target - current; DE is CIEDE2000 with unit weights.
func DeltaE(target, current Lab) DeltaComponents {
	return DeltaComponents{
		DL: target.L - current.L,
		DA: target.A - current.A,
		DB: target.B - current.B,
		DE: CIEDE2000(target, current),
	}
}

// CIEDE2000 returns the CIEDE2000 colour difference between lab1 and lab2
// with kL = kC = kH = 1. It is symmetric in its arguments and returns
// exactly 0 for identical colours.
func CIEDE2000(lab1, lab2 Lab) float64 {
	c1 := math.Sqrt(lab1.A*lab1.A + lab1.B*lab1.B)
	c2 := math.Sqrt(lab2.A*lab2.A + lab2.B*lab2.B)
	cBar := (c1 + c2) / 2

	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25to7)))
	a1p := lab1.A * (1 + g)
	a2p := lab2.A * (1 + g)

	c1p := math.Sqrt(a1p*a1p + lab1.B*lab1.B)
	c2p := math.Sqrt(a2p*a2p + lab2.B*lab2.B)
	cBarP := (c1p + c2p) / 2

	h1p := hueAngle(a1p, lab1.B)
	h2p := hueAngle(a2p, lab2.B)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	// Neutral colours have no hue: both the hue difference and the
	// hue mean degenerate.
	neutral := c1p*c2p == 0

	var dhp float64
	if !neutral {
		dhp = h2p - h1p
		switch {
		case dhp > 180:
			dhp -= 360
		case dhp < -180:
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))

	lBarP := (lab1.L + lab2.L) / 2

	var hBarP float64
	switch {
	case neutral:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(rad(hBarP-30)) +
		0.24*math.Cos(rad(2*hBarP)) +
		0.32*math.Cos(rad(3*hBarP+6)) -
		0.20*math.Cos(rad(4*hBarP-63))

	dTheta := 30 * math.Exp(-math.Pow((hBarP-275)/25, 2))
	cBarP7 := math.Pow(cBarP, 7)
	rc := 2 * math.Sqrt(cBarP7/(cBarP7+pow25to7))
	rt := -math.Sin(rad(2*dTheta)) * rc

	l50 := (lBarP - 50) * (lBarP - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	tl := dLp / sl
	tc := dCp / sc
	th := dHp / sh
	return math.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}
