// Package colorlab converts between 8-bit sRGB and CIE L*a*b* (D65) and
// measures perceptual colour difference with CIEDE2000.
//
// Every function in this package is pure and safe for concurrent use.
package colorlab

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// D65 reference white, scaled so that Y is 100.
const (
	RefX = 95.047
	RefY = 100.0
	RefZ = 108.883
)

// RGB is a gamma-encoded sRGB colour with channels nominally in [0, 255].
type RGB struct {
	R, G, B int
}

// XYZ holds CIE XYZ tristimulus values relative to RefY = 100.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* colour under the D65 white point.
type Lab struct {
	L, A, B float64
}

// DeltaComponents reports the difference between a target and a current
// colour. DL, DA and DB are signed (target - current); DE is the CIEDE2000
// magnitude and does not depend on argument order.
type DeltaComponents struct {
	DL, DA, DB float64
	DE         float64
}

// Matches reports whether the difference is within threshold.
func (d DeltaComponents) Matches(threshold float64) bool {
	return d.DE <= threshold
}

func clampChannel(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

// Clamp returns rgb with every channel clamped to [0, 255].
func (rgb RGB) Clamp() RGB {
	return RGB{clampChannel(rgb.R), clampChannel(rgb.G), clampChannel(rgb.B)}
}

// RGBA implements color.Color. The colour is always opaque.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	c := rgb.Clamp()
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats rgb as #rrggbb.
func (rgb RGB) Hex() string {
	c := rgb.Clamp()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// RGBFromColor converts any color.Color to 8-bit RGB, ignoring alpha.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{int(n.R), int(n.G), int(n.B)}
}

// ParseHex parses #rrggbb, rrggbb, #rgb or rgb.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, nil
}

func (lab Lab) String() string {
	return fmt.Sprintf("L*=%.2f a*=%.2f b*=%.2f", lab.L, lab.A, lab.B)
}

// IsZero reports whether all three coordinates are exactly zero.
func (lab Lab) IsZero() bool {
	return lab.L == 0 && lab.A == 0 && lab.B == 0
}
