package colorlab

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

// Chromath returns lab as a go-chromath Lab value.
func (lab Lab) Chromath() chromath.Lab {
	return chromath.Lab{lab.L, lab.A, lab.B}
}

// LabFromChromath converts a go-chromath Lab value.
func LabFromChromath(c chromath.Lab) Lab {
	return Lab{c[0], c[1], c[2]}
}

// ChromathCIEDE2000 is go-chromath's CIEDE2000 with default weights, used to
// cross-check CIEDE2000.
func ChromathCIEDE2000(lab1, lab2 Lab) float64 {
	return deltae.CIE2000(lab1.Chromath(), lab2.Chromath(), &deltae.KLChDefault)
}
