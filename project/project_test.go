package project

import (
	"strings"
	"testing"

	"github.com/mmuldo/tintmatch/colorlab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New("  ", colorlab.RGB{R: 255, G: 0, B: 0})
	assert.Equal(t, DefaultName, p.Name)
	assert.Equal(t, colorlab.RGBToLab(colorlab.RGB{R: 255, G: 0, B: 0}), p.TargetLab)
}

func TestSetTarget(t *testing.T) {
	p := New("sky", colorlab.RGB{})

	p.SetTargetRGB(colorlab.RGB{R: 128, G: 128, B: 128})
	assert.InDelta(t, 53.59, p.TargetLab.L, 0.1)

	lab := colorlab.Lab{L: 100, A: 100, B: 100}
	p.SetTargetLab(lab)
	assert.Equal(t, lab, p.TargetLab)
	assert.Equal(t, colorlab.LabToRGB(lab), p.Target)
	assert.Equal(t, p.Target.Clamp(), p.Target)
}

func TestBackfill(t *testing.T) {
	p := &Project{Target: colorlab.RGB{R: 0, G: 0, B: 255}}
	assert.True(t, p.Backfill())
	assert.InDelta(t, 32.30, p.TargetLab.L, 0.1)
	assert.False(t, p.Backfill())

	black := &Project{}
	assert.False(t, black.Backfill())
	assert.True(t, black.TargetLab.IsZero())

	stored := &Project{Target: colorlab.RGB{R: 10, G: 10, B: 10}, TargetLab: colorlab.Lab{L: 42}}
	assert.False(t, stored.Backfill())
	assert.Equal(t, 42.0, stored.TargetLab.L)
}

func TestAddIteration(t *testing.T) {
	p := New("rust", colorlab.RGB{R: 183, G: 65, B: 14})

	it, err := p.AddIteration("Burnt Sienna", 2, colorlab.RGB{R: 150, G: 60, B: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, it.Num)

	it, err = p.AddIteration("burnt sienna", 1.5, colorlab.RGB{R: 170, G: 64, B: 18})
	require.NoError(t, err)
	assert.Equal(t, 2, it.Num)

	_, err = p.AddIteration("Cadmium Red", 0.5, colorlab.RGB{R: 180, G: 66, B: 15})
	require.NoError(t, err)

	require.Len(t, p.Pigments, 2)
	assert.Equal(t, "Burnt Sienna", p.Pigments[0].Name)
	assert.Equal(t, 3.5, p.Pigments[0].Quantity)
	assert.Equal(t, 4.0, p.TotalQuantity())

	pg, ok := p.Pigment("CADMIUM RED")
	require.True(t, ok)
	assert.Equal(t, 0.5, pg.Quantity)

	_, err = p.AddIteration(" ", 1, colorlab.RGB{})
	assert.ErrorIs(t, err, ErrNoPigment)
	_, err = p.AddIteration("Ochre", -1, colorlab.RGB{})
	assert.ErrorIs(t, err, ErrQuantity)
	assert.Len(t, p.Iterations, 3)
}

func TestScore(t *testing.T) {
	p := New("red", colorlab.RGB{R: 255, G: 0, B: 0})
	_, err := p.AddIteration("Cadmium Red", 1, colorlab.RGB{R: 200, G: 20, B: 20})
	require.NoError(t, err)
	_, err = p.AddIteration("Cadmium Red", 1, colorlab.RGB{R: 255, G: 0, B: 0})
	require.NoError(t, err)
	_, err = p.AddIteration("Cadmium Red", 1, colorlab.RGB{R: 250, G: 5, B: 3})
	require.NoError(t, err)

	scores := Scorer{Threshold: DefaultThreshold}.Score(p)
	require.Len(t, scores, 3)
	assert.False(t, scores[0].Match)
	assert.True(t, scores[1].Match)
	assert.Equal(t, 0.0, scores[1].Delta.DE)
	assert.Equal(t, p.TargetLab.L-scores[0].Lab.L, scores[0].Delta.DL)

	loose := Scorer{Threshold: 100}.Score(p)
	assert.True(t, loose[0].Match)

	best, err := Best(scores)
	require.NoError(t, err)
	assert.Equal(t, 2, best.Iteration.Num)

	_, err = Best(nil)
	assert.ErrorIs(t, err, ErrNoIterations)
}

const legacy = `{
  "id": "p1",
  "name": "",
  "targetR": 0, "targetG": 0, "targetB": 255,
  "targetL": 0, "targetA": 0, "targetB_lab": 0,
  "pigments": [{"name": "Ultramarine", "quantity": 3}],
  "iterations": [
    {"iterationNum": 1, "pigmentAdded": "Ultramarine", "quantityAdded": 2, "resultR": 10, "resultG": 20, "resultB": 300},
    {"pigmentAdded": "Ultramarine", "quantityAdded": 1, "resultR": 0, "resultG": 0, "resultB": 250}
  ]
}`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(legacy))
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, DefaultName, p.Name)
	assert.InDelta(t, 32.30, p.TargetLab.L, 0.1)
	assert.InDelta(t, -107.86, p.TargetLab.B, 0.1)

	require.Len(t, p.Iterations, 2)
	assert.Equal(t, colorlab.RGB{R: 10, G: 20, B: 255}, p.Iterations[0].Result)
	assert.Equal(t, 2, p.Iterations[1].Num)
	assert.Equal(t, 3.0, p.TotalQuantity())

	p, err = Decode(strings.NewReader(`{"targetR": 1, "targetG": 2, "targetB": 3, "targetL": 50, "targetA": 1, "targetB_lab": -1}`))
	require.NoError(t, err)
	assert.Equal(t, colorlab.Lab{L: 50, A: 1, B: -1}, p.TargetLab)

	_, err = Decode(strings.NewReader(`{"targetR": "x"`))
	assert.Error(t, err)

	_, err = LoadFile("does-not-exist.json")
	assert.Error(t, err)
}

func TestEditIterations(t *testing.T) {
	p := New("teal", colorlab.RGB{R: 0, G: 128, B: 128})
	for _, rgb := range []colorlab.RGB{{R: 10, G: 100, B: 100}, {R: 5, G: 120, B: 125}, {R: 0, G: 128, B: 128}} {
		_, err := p.AddIteration("Phthalo Green", 1, rgb)
		require.NoError(t, err)
	}

	require.NoError(t, p.SetIterationResult(1, colorlab.RGB{R: 0, G: 128, B: 128}))
	scores := Scorer{Threshold: DefaultThreshold}.Score(p)
	assert.True(t, scores[0].Match)

	require.NoError(t, p.RemoveIteration(2))
	require.Len(t, p.Iterations, 2)
	assert.Equal(t, 3, p.Iterations[1].Num)
	assert.Equal(t, 3.0, p.TotalQuantity())

	it, err := p.AddIteration("Phthalo Green", 1, colorlab.RGB{})
	require.NoError(t, err)
	assert.Equal(t, 4, it.Num)

	assert.ErrorIs(t, p.SetIterationResult(2, colorlab.RGB{}), ErrNotFound)
	assert.ErrorIs(t, p.RemoveIteration(9), ErrNotFound)
}

func TestEditPigments(t *testing.T) {
	p := New("olive", colorlab.RGB{R: 128, G: 128, B: 0})
	require.NoError(t, p.AddPigment("Yellow Ochre", 2))
	require.NoError(t, p.AddPigment("Ivory Black", 0.5))

	require.NoError(t, p.SetPigment("yellow ochre", 1.25))
	pg, ok := p.Pigment("Yellow Ochre")
	require.True(t, ok)
	assert.Equal(t, 1.25, pg.Quantity)
	assert.ErrorIs(t, p.SetPigment("Yellow Ochre", -1), ErrQuantity)
	assert.ErrorIs(t, p.SetPigment("Sap Green", 1), ErrNotFound)

	require.NoError(t, p.RenamePigment("ivory black", "Mars Black"))
	_, ok = p.Pigment("Mars Black")
	assert.True(t, ok)
	require.NoError(t, p.RenamePigment("mars black", "MARS BLACK"))
	assert.ErrorIs(t, p.RenamePigment("Mars Black", "yellow ochre"), ErrDuplicate)
	assert.ErrorIs(t, p.RenamePigment("Mars Black", " "), ErrNoPigment)
	assert.ErrorIs(t, p.RenamePigment("Sap Green", "Viridian"), ErrNotFound)

	require.NoError(t, p.RemovePigment("MARS black"))
	require.Len(t, p.Pigments, 1)
	assert.ErrorIs(t, p.RemovePigment("Mars Black"), ErrNotFound)
}

func TestNegativeQuantityRejected(t *testing.T) {
	p := New("sand", colorlab.RGB{R: 194, G: 178, B: 128})
	assert.ErrorIs(t, p.AddPigment("Raw Umber", -0.5), ErrQuantity)
	assert.Empty(t, p.Pigments)
}
