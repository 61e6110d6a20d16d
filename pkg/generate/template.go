package generate

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/infection/pkg/errors"
)

// pctTolerance absorbs float rounding when percentages are summed or
// multiplied by the graph size.
const pctTolerance = 1e-9

// Distribution describes how many parents a member of a layer gets.
//
// CDF is cumulative: {Min: 1, CDF: [0.5, 1]} means one parent with
// probability 0.5 and two parents with probability 0.5.
type Distribution struct {
	Min int       `toml:"min" json:"min"`
	CDF []float64 `toml:"cdf" json:"cdf"`
}

// Layer is one tier of the hierarchy. Members of layer i draw their parents
// from layer i+1, so the last layer must not have a distribution.
type Layer struct {
	// Pct is the share of the graph in this layer.
	Pct  float64       `toml:"pct" json:"pct"`
	Dist *Distribution `toml:"dist,omitempty" json:"dist,omitempty"`
}

// HasDist reports whether members of the layer are given parents.
func (l Layer) HasDist() bool { return l.Dist != nil }

// Template describes a layered random graph. Layer order is the slice
// order: Layers[0] is the bottom tier of coachees.
type Template struct {
	Name   string  `toml:"name" json:"name"`
	Layers []Layer `toml:"layers" json:"layers"`
}

// DefaultTemplate returns the reference hierarchy: 80% leaf coachees with
// one to three coaches, 12% mid-tier members with zero to two coaches, and
// 8% top-tier coaches.
func DefaultTemplate() Template {
	return Template{
		Name: "default",
		Layers: []Layer{
			{Pct: 0.80, Dist: &Distribution{Min: 1, CDF: []float64{0.7, 0.9, 1}}},
			{Pct: 0.12, Dist: &Distribution{Min: 0, CDF: []float64{0.7, 0.85, 1}}},
			{Pct: 0.08},
		},
	}
}

// Validate checks the template for structural problems.
func (t Template) Validate() error {
	if len(t.Layers) == 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "template %q has no layers", t.Name)
	}

	sum := 0.0
	for i, l := range t.Layers {
		if l.Pct < 0 || l.Pct > 1 {
			return errors.New(errors.ErrCodeInvalidTemplate, "layer %d: pct %.4f not in [0, 1]", i+1, l.Pct)
		}
		sum += l.Pct
		if !l.HasDist() {
			continue
		}
		if i == len(t.Layers)-1 {
			return errors.New(errors.ErrCodeInvalidTemplate, "layer %d: top layer cannot have a parent distribution", i+1)
		}
		if err := l.Dist.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTemplate, err, "layer %d", i+1)
		}
	}
	if sum > 1+pctTolerance {
		return errors.New(errors.ErrCodeInvalidTemplate, "layer percentages sum to %.4f (max 1)", sum)
	}
	return nil
}

func (d *Distribution) validate() error {
	if d.Min < 0 {
		return fmt.Errorf("min %d is negative", d.Min)
	}
	if len(d.CDF) == 0 {
		return fmt.Errorf("cdf is empty")
	}
	prev := 0.0
	for i, v := range d.CDF {
		if v < prev || v > 1 {
			return fmt.Errorf("cdf[%d] = %.4f must be non-decreasing within [0, 1]", i, v)
		}
		prev = v
	}
	if math.Abs(prev-1) > pctTolerance {
		return fmt.Errorf("cdf must end at 1, got %.4f", prev)
	}
	return nil
}

// ParseTemplate decodes and validates a TOML template:
//
//	name = "default"
//
//	[[layers]]
//	pct = 0.8
//	dist = { min = 1, cdf = [0.7, 0.9, 1.0] }
//
//	[[layers]]
//	pct = 0.2
func ParseTemplate(data []byte) (Template, error) {
	var t Template
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Template{}, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "decode template")
	}
	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

// LoadTemplate reads a TOML template from path.
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Template{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "template %s", path)
		}
		return Template{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseTemplate(data)
}

// EncodeTemplate renders t as TOML.
func EncodeTemplate(t Template) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(t); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	return buf.Bytes(), nil
}
