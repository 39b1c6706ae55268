package palette

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/tintmatch/colorlab"
	"github.com/mmuldo/tintmatch/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func list(rgbs ...colorlab.RGB) image.ColorCountList {
	m := make(map[colorlab.RGB]int, len(rgbs))
	for i, rgb := range rgbs {
		m[rgb] = len(rgbs) - i
	}
	return image.RankColors(m)
}

func TestDistinguish(t *testing.T) {
	ccl := list(
		colorlab.RGB{R: 200, G: 30, B: 30},
		colorlab.RGB{R: 20, G: 40, B: 220},
		colorlab.RGB{R: 201, G: 31, B: 30},
		colorlab.RGB{R: 30, G: 200, B: 40},
		colorlab.RGB{R: 21, G: 40, B: 221},
	)

	g := Distinguish(ccl, 5)
	require.Len(t, g, 3)
	assert.Equal(t, colorlab.RGB{R: 200, G: 30, B: 30}, g[0].RGB)
	assert.Equal(t, 5+3, g[0].Count)
	assert.Equal(t, colorlab.RGB{R: 20, G: 40, B: 220}, g[1].RGB)
	assert.Equal(t, 4+1, g[1].Count)

	for i := range g {
		for j := i + 1; j < len(g); j++ {
			assert.GreaterOrEqual(t, colorlab.CIEDE2000(g[i].Lab, g[j].Lab), 5.0)
		}
	}

	assert.Len(t, Distinguish(ccl, 0), len(ccl))
	assert.Empty(t, Distinguish(nil, 5))
}

func TestNearest(t *testing.T) {
	ccl := list(
		colorlab.RGB{R: 200, G: 30, B: 30},
		colorlab.RGB{R: 20, G: 40, B: 220},
		colorlab.RGB{R: 30, G: 200, B: 40},
	)

	i, d, ok := Nearest(colorlab.RGBToLab(colorlab.RGB{R: 25, G: 45, B: 210}), ccl)
	require.True(t, ok)
	assert.Equal(t, colorlab.RGB{R: 20, G: 40, B: 220}, ccl[i].RGB)
	assert.Greater(t, d.DE, 0.0)

	i, d, ok = Nearest(ccl[2].Lab, ccl)
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 0.0, d.DE)

	_, _, ok = Nearest(colorlab.Lab{}, nil)
	assert.False(t, ok)
}

func TestSwatch(t *testing.T) {
	colors := []colorlab.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255}}
	img := Swatch(colors, 10, 2)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	assert.Equal(t, colorlab.RGB{R: 0, G: 255, B: 0}, colorlab.RGBFromColor(img.At(15, 5)))
	assert.Equal(t, colorlab.RGB{R: 0, G: 0, B: 255}, colorlab.RGBFromColor(img.At(5, 15)))

	assert.Equal(t, 10, Swatch(colors[:1], 10, 4).Bounds().Dx())

	path := filepath.Join(t.TempDir(), "swatch.png")
	require.NoError(t, WriteSwatch(path, img))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, colorlab.RGB{R: 255, G: 0, B: 0}, colorlab.RGBFromColor(decoded.At(0, 0)))
}
