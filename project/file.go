package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mmuldo/tintmatch/colorlab"
)

// record is the exported form of a project, one column per field.
// targetB is the blue channel and targetB_lab the b* axis.
type record struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	TargetR    int               `json:"targetR"`
	TargetG    int               `json:"targetG"`
	TargetB    int               `json:"targetB"`
	TargetL    *float64          `json:"targetL"`
	TargetA    *float64          `json:"targetA"`
	TargetBLab *float64          `json:"targetB_lab"`
	Pigments   []Pigment         `json:"pigments"`
	Iterations []iterationRecord `json:"iterations"`
}

type iterationRecord struct {
	ID       string  `json:"id"`
	Num      int     `json:"iterationNum"`
	Pigment  string  `json:"pigmentAdded"`
	Quantity float64 `json:"quantityAdded"`
	ResultR  int     `json:"resultR"`
	ResultG  int     `json:"resultG"`
	ResultB  int     `json:"resultB"`
}

// Decode reads a project record from r. Stored Lab fields are kept as they
// are; a missing or all-zero Lab is backfilled from the RGB target.
func Decode(r io.Reader) (*Project, error) {
	var rec record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}

	p := &Project{
		ID:       rec.ID,
		Name:     rec.Name,
		Pigments: rec.Pigments,
		Target:   colorlab.RGB{R: rec.TargetR, G: rec.TargetG, B: rec.TargetB}.Clamp(),
	}
	if p.Name == "" {
		p.Name = DefaultName
	}
	if rec.TargetL != nil && rec.TargetA != nil && rec.TargetBLab != nil {
		p.TargetLab = colorlab.Lab{L: *rec.TargetL, A: *rec.TargetA, B: *rec.TargetBLab}
	}
	p.Backfill()

	for i, it := range rec.Iterations {
		num := it.Num
		if num == 0 {
			num = i + 1
		}
		p.Iterations = append(p.Iterations, Iteration{
			ID:       it.ID,
			Num:      num,
			Pigment:  it.Pigment,
			Quantity: it.Quantity,
			Result:   colorlab.RGB{R: it.ResultR, G: it.ResultG, B: it.ResultB}.Clamp(),
		})
	}

	return p, nil
}

// LoadFile decodes the project file at path.
func LoadFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
