package cmd

import (
	"fmt"
	"strconv"

	"github.com/mmuldo/tintmatch/colorlab"
)

func parseFloats(args []string) ([]float64, error) {
	fs := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a number", a)
		}
		fs[i] = f
	}
	return fs, nil
}

// parseRGB accepts either a single hex color or three channel values.
// Channels outside [0, 255] are clamped.
func parseRGB(args []string) (colorlab.RGB, error) {
	switch len(args) {
	case 1:
		return colorlab.ParseHex(args[0])
	case 3:
		var c [3]int
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return colorlab.RGB{}, fmt.Errorf("'%s' is not a color channel", a)
			}
			c[i] = v
		}
		rgb := colorlab.RGB{R: c[0], G: c[1], B: c[2]}
		if clamped := rgb.Clamp(); clamped != rgb {
			logger.Printf("clamped %v to %v", rgb, clamped)
			rgb = clamped
		}
		return rgb, nil
	}
	return colorlab.RGB{}, fmt.Errorf("expected a hex color or 3 channels, got %d arguments", len(args))
}

func parseLab(args []string) (colorlab.Lab, error) {
	if len(args) != 3 {
		return colorlab.Lab{}, fmt.Errorf("expected L* a* b*, got %d arguments", len(args))
	}
	fs, err := parseFloats(args)
	if err != nil {
		return colorlab.Lab{}, err
	}
	return colorlab.Lab{L: fs[0], A: fs[1], B: fs[2]}, nil
}
