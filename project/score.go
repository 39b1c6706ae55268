package project

import "github.com/mmuldo/tintmatch/colorlab"

// DefaultThreshold is the CIEDE2000 difference at or below which an
// iteration counts as a match.
const DefaultThreshold = 2.0

// Score is an iteration measured against the project target.
type Score struct {
	Iteration Iteration
	Lab       colorlab.Lab
	Delta     colorlab.DeltaComponents
	Match     bool
}

// Scorer rates iterations against a project target.
type Scorer struct {
	Threshold float64
}

// Score rates every iteration of p in order.
func (s Scorer) Score(p *Project) []Score {
	scores := make([]Score, len(p.Iterations))
	for i, it := range p.Iterations {
		lab := colorlab.RGBToLab(it.Result)
		d := colorlab.DeltaE(p.TargetLab, lab)
		scores[i] = Score{
			Iteration: it,
			Lab:       lab,
			Delta:     d,
			Match:     d.Matches(s.Threshold),
		}
	}
	return scores
}

// Best returns the score with the smallest difference. Ties go to the
// earlier iteration.
func Best(scores []Score) (Score, error) {
	if len(scores) == 0 {
		return Score{}, ErrNoIterations
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Delta.DE < best.Delta.DE {
			best = s
		}
	}
	return best, nil
}
