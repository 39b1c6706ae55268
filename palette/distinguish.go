// Package palette picks perceptually distinct colors out of a ranked image
// palette and finds the candidate closest to a target.
package palette

import (
	"github.com/mmuldo/tintmatch/colorlab"
	"github.com/mmuldo/tintmatch/image"
)

// Distinguish groups colors that are within minDE (CIEDE2000) of each other.
// ccl is walked in order, so the first color of each group is its
// representative and the group's pixel counts are summed into it.
func Distinguish(ccl image.ColorCountList, minDE float64) image.ColorCountList {
	g := make(image.ColorCountList, 0, len(ccl))

	for _, cc := range ccl {
		k := -1
		for i := range g {
			if colorlab.CIEDE2000(g[i].Lab, cc.Lab) < minDE {
				k = i
				break
			}
		}
		if k < 0 {
			g = append(g, cc)
			continue
		}
		g[k].Count += cc.Count
	}

	return g
}

// Nearest returns the index of the candidate closest to target and its
// difference from target. ok is false when ccl is empty.
func Nearest(target colorlab.Lab, ccl image.ColorCountList) (index int, d colorlab.DeltaComponents, ok bool) {
	for i, cc := range ccl {
		di := colorlab.DeltaE(target, cc.Lab)
		if !ok || di.DE < d.DE {
			index, d, ok = i, di, true
		}
	}
	return index, d, ok
}
