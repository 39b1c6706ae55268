// Package project models a colour matching project: a target colour, the
// pigments mixed so far and the logged mix iterations. It holds no storage;
// callers load and save records however they like.
package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmuldo/tintmatch/colorlab"
)

var (
	ErrNoIterations = errors.New("project has no iterations")
	ErrNoPigment    = errors.New("pigment name is required")
	ErrQuantity     = errors.New("quantity must not be negative")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("pigment already exists")
)

// DefaultName is used for projects created without a name.
const DefaultName = "Untitled Project"

// Pigment is a named pigment and the total quantity added to the mix.
type Pigment struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// Iteration is one logged mixing step and the colour measured after it.
type Iteration struct {
	ID       string
	Num      int
	Pigment  string
	Quantity float64
	Result   colorlab.RGB
}

// Project is a target colour and the work done to match it. Target and
// TargetLab always describe the same colour once set through SetTargetRGB,
// SetTargetLab or Backfill.
type Project struct {
	ID         string
	Name       string
	Target     colorlab.RGB
	TargetLab  colorlab.Lab
	Pigments   []Pigment
	Iterations []Iteration
}

// New returns a project whose target is given in RGB.
func New(name string, target colorlab.RGB) *Project {
	p := &Project{Name: strings.TrimSpace(name)}
	if p.Name == "" {
		p.Name = DefaultName
	}
	p.SetTargetRGB(target)
	return p
}

// SetTargetRGB makes rgb the authoritative target and recomputes its Lab.
func (p *Project) SetTargetRGB(rgb colorlab.RGB) {
	p.Target = rgb
	p.TargetLab = colorlab.RGBToLab(rgb)
}

// SetTargetLab makes lab the authoritative target and mirrors it to RGB for
// display. The RGB mirror is clamped to the sRGB gamut.
func (p *Project) SetTargetLab(lab colorlab.Lab) {
	p.TargetLab = lab
	p.Target = colorlab.LabToRGB(lab)
}

// Backfill computes the target Lab for records that predate it: the Lab
// is all zero while the RGB is not black. It reports whether it changed p.
func (p *Project) Backfill() bool {
	if !p.TargetLab.IsZero() || p.Target == (colorlab.RGB{}) {
		return false
	}
	p.TargetLab = colorlab.RGBToLab(p.Target)
	return true
}

// Pigment returns the pigment named name, ignoring case.
func (p *Project) Pigment(name string) (*Pigment, bool) {
	for i := range p.Pigments {
		if strings.EqualFold(p.Pigments[i].Name, name) {
			return &p.Pigments[i], true
		}
	}
	return nil, false
}

// AddPigment adds quantity of the named pigment to the tally. A pigment
// already present under a different case keeps its first spelling.
func (p *Project) AddPigment(name string, quantity float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNoPigment
	}
	if quantity < 0 {
		return fmt.Errorf("%s: %w", name, ErrQuantity)
	}

	if pg, ok := p.Pigment(name); ok {
		pg.Quantity += quantity
		return nil
	}
	p.Pigments = append(p.Pigments, Pigment{Name: name, Quantity: quantity})
	return nil
}

// SetPigment sets the tallied quantity of an existing pigment.
func (p *Project) SetPigment(name string, quantity float64) error {
	if quantity < 0 {
		return fmt.Errorf("%s: %w", name, ErrQuantity)
	}
	pg, ok := p.Pigment(name)
	if !ok {
		return fmt.Errorf("pigment %s: %w", name, ErrNotFound)
	}
	pg.Quantity = quantity
	return nil
}

// RenamePigment renames a pigment. Logged iterations keep the name they
// were recorded with.
func (p *Project) RenamePigment(name, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrNoPigment
	}
	pg, ok := p.Pigment(name)
	if !ok {
		return fmt.Errorf("pigment %s: %w", name, ErrNotFound)
	}
	if other, ok := p.Pigment(newName); ok && other != pg {
		return fmt.Errorf("%s: %w", newName, ErrDuplicate)
	}
	pg.Name = newName
	return nil
}

// RemovePigment drops a pigment from the tally.
func (p *Project) RemovePigment(name string) error {
	for i := range p.Pigments {
		if strings.EqualFold(p.Pigments[i].Name, name) {
			p.Pigments = append(p.Pigments[:i], p.Pigments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("pigment %s: %w", name, ErrNotFound)
}

func (p *Project) iteration(num int) int {
	for i := range p.Iterations {
		if p.Iterations[i].Num == num {
			return i
		}
	}
	return -1
}

func (p *Project) nextNum() int {
	if n := len(p.Iterations); n > 0 {
		return p.Iterations[n-1].Num + 1
	}
	return 1
}

// AddIteration logs a mixing step, numbering it after the last one, and
// folds its quantity into the pigment tally.
func (p *Project) AddIteration(pigment string, quantity float64, result colorlab.RGB) (Iteration, error) {
	if err := p.AddPigment(pigment, quantity); err != nil {
		return Iteration{}, fmt.Errorf("iteration %d: %w", p.nextNum(), err)
	}

	it := Iteration{
		Num:      p.nextNum(),
		Pigment:  strings.TrimSpace(pigment),
		Quantity: quantity,
		Result:   result,
	}
	p.Iterations = append(p.Iterations, it)
	return it, nil
}

// SetIterationResult replaces the measured colour of iteration num.
func (p *Project) SetIterationResult(num int, result colorlab.RGB) error {
	i := p.iteration(num)
	if i < 0 {
		return fmt.Errorf("iteration %d: %w", num, ErrNotFound)
	}
	p.Iterations[i].Result = result
	return nil
}

// RemoveIteration deletes iteration num. Remaining iterations keep their
// numbers and the pigment tally is left as it is.
func (p *Project) RemoveIteration(num int) error {
	i := p.iteration(num)
	if i < 0 {
		return fmt.Errorf("iteration %d: %w", num, ErrNotFound)
	}
	p.Iterations = append(p.Iterations[:i], p.Iterations[i+1:]...)
	return nil
}

// TotalQuantity returns the summed quantity of every pigment.
func (p *Project) TotalQuantity() float64 {
	var t float64
	for _, pg := range p.Pigments {
		t += pg.Quantity
	}
	return t
}
