package image

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mmuldo/tintmatch/colorlab"
)

// ErrTooFewColors is returned when an image does not have enough variation
// to yield the requested number of colors.
var ErrTooFewColors = errors.New("not enough color variation")

// ColorCount is an image color, its Lab equivalent, and the number of pixels
// it takes up.
type ColorCount struct {
	RGB   colorlab.RGB
	Lab   colorlab.Lab
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].RGB.Hex() < ccl[j].RGB.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// RGBs returns the colors of the list in order.
func (ccl ColorCountList) RGBs() []colorlab.RGB {
	rgbs := make([]colorlab.RGB, len(ccl))
	for i, cc := range ccl {
		rgbs[i] = cc.RGB
	}
	return rgbs
}

// Quantize reduces img to at most num colors.
func Quantize(img image.Image, num int) *image.NRGBA {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)
	return o
}

// GetColors returns a map of an image's opaque colors and the number of
// times each color occurs, looking at every step-th pixel on both axes.
func GetColors(img image.Image, step int) map[colorlab.RGB]int {
	if step < 1 {
		step = 1
	}
	m := make(map[colorlab.RGB]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a != 0 {
				m[colorlab.RGBFromColor(c)]++
			}
		}
	}

	return m
}

// RankColors converts a color count map to a list sorted by prevalence.
func RankColors(m map[colorlab.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))

	for k, v := range m {
		cc = append(cc, ColorCount{k, colorlab.RGBToLab(k), v})
	}

	sort.Sort(cc)
	return cc
}

// Sample retrieves num colors that best represent the image located at path.
func Sample(path string, num int) (ColorCountList, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	m := GetColors(Quantize(img, num), 5)
	if len(m) < num {
		return nil, fmt.Errorf("image at %s has %d colors, want %d: %w", path, len(m), num, ErrTooFewColors)
	}

	return RankColors(m), nil
}
