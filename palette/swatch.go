package palette

import (
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/mmuldo/tintmatch/colorlab"
)

// Swatch lays colors out as size x size squares, cols per row.
func Swatch(colors []colorlab.RGB, size, cols int) *image.RGBA {
	if cols < 1 {
		cols = 1
	}
	rows := (len(colors) + cols - 1) / cols
	w := cols
	if len(colors) < cols {
		w = len(colors)
	}
	img := image.NewRGBA(image.Rect(0, 0, w*size, rows*size))

	for i, c := range colors {
		x := (i % cols) * size
		y := (i / cols) * size
		draw.Draw(img, image.Rect(x, y, x+size, y+size), image.NewUniform(c), image.Point{}, draw.Src)
	}

	return img
}

// WriteSwatch encodes img as a PNG file at path.
func WriteSwatch(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err = png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
