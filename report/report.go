// Package report renders a scored project through a pongo2 template.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/tintmatch/colorlab"
	"github.com/mmuldo/tintmatch/project"
)

// DefaultTemplate lists the target, every iteration with its difference
// from the target, and the pigment tally.
const DefaultTemplate = `{% autoescape off %}{{ project.Name }} {{ project.Target|hex }} (L*={{ project.TargetLab.L|fixed:2 }} a*={{ project.TargetLab.A|fixed:2 }} b*={{ project.TargetLab.B|fixed:2 }})
{% for s in scores %}#{{ s.Iteration.Num }} +{{ s.Iteration.Quantity|floatformat:2 }} {{ s.Iteration.Pigment }} -> {{ s.Iteration.Result|hex }} dL={{ s.Delta.DL|fixed:2 }} da={{ s.Delta.DA|fixed:2 }} db={{ s.Delta.DB|fixed:2 }} dE={{ s.Delta.DE|floatformat:2 }}{% if s.Match %} match{% endif %}
{% empty %}no iterations
{% endfor %}{% if best %}best: #{{ best.Iteration.Num }} dE={{ best.Delta.DE|floatformat:2 }} (threshold {{ threshold|floatformat:2 }})
{% endif %}{% for pg in pigments %}{{ pg.Name }}: {{ pg.Quantity|floatformat:2 }}
{% endfor %}{% endautoescape %}`

func init() {
	if err := pongo2.RegisterFilter("hex", filterHex); err != nil {
		panic(err)
	}
	if err := pongo2.RegisterFilter("fixed", filterFixed); err != nil {
		panic(err)
	}
}

// filterFixed formats a number with a fixed number of decimals (default 2),
// printing values that round to zero as 0 rather than -0.
func filterFixed(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsNumber() {
		return in, nil
	}
	places := 2
	if param != nil && param.IsInteger() {
		places = param.Integer()
	}
	return pongo2.AsValue(strconv.FormatFloat(colorlab.Round(in.Float(), places), 'f', places, 64)), nil
}

func filterHex(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	switch c := in.Interface().(type) {
	case colorlab.RGB:
		return pongo2.AsValue(c.Hex()), nil
	case colorlab.Lab:
		return pongo2.AsValue(colorlab.LabToRGB(c).Hex()), nil
	}
	return in, nil
}

// Load returns the template at path, or DefaultTemplate when path is empty.
func Load(path string) (*pongo2.Template, error) {
	if path == "" {
		return pongo2.FromString(DefaultTemplate)
	}

	tpl, err := pongo2.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tpl, nil
}

// Render scores p with the given match threshold and executes tpl into w.
func Render(w io.Writer, tpl *pongo2.Template, p *project.Project, threshold float64) error {
	scores := project.Scorer{Threshold: threshold}.Score(p)

	ctxt := pongo2.Context{
		"project":   p,
		"scores":    scores,
		"pigments":  p.Pigments,
		"threshold": threshold,
	}
	if best, err := project.Best(scores); err == nil {
		ctxt["best"] = best
	}

	return tpl.ExecuteWriter(ctxt, w)
}
