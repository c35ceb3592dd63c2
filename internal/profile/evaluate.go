package profile

import (
	"fmt"
	"math"
)

// Profile holds a closure evaluated over a radius grid as parallel slices.
// Samples where the closure had no physical solution carry NaN in every field
// and false in Valid; Errs records one error per such sample.
type Profile struct {
	Closure string

	R           []float64
	Phi         []float64
	Rho         []float64
	Pressure    []float64
	Temperature []float64
	Entropy     []float64

	Valid []bool
	Errs  []error
}

// Evaluate runs a closure over the grid. Invalid samples are flagged and
// skipped over rather than aborting the run; the only fatal condition is a
// malformed grid.
func Evaluate(c Closure, grid RadiusGrid) (*Profile, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	n := len(grid)
	p := &Profile{
		Closure:     c.Name(),
		R:           make([]float64, n),
		Phi:         make([]float64, n),
		Rho:         make([]float64, n),
		Pressure:    make([]float64, n),
		Temperature: make([]float64, n),
		Entropy:     make([]float64, n),
		Valid:       make([]bool, n),
	}

	pot := c.Potential()
	for i, r := range grid {
		p.R[i] = r
		p.Phi[i] = pot.At(r)

		rho, err := c.Density(r)
		if err != nil {
			p.markInvalid(i, err)
			continue
		}
		pr, err := c.Pressure(r)
		if err != nil {
			p.markInvalid(i, err)
			continue
		}
		t, err := c.Temperature(r)
		if err != nil {
			p.markInvalid(i, err)
			continue
		}
		s, err := c.Entropy(r)
		if err != nil {
			p.markInvalid(i, err)
			continue
		}

		p.Rho[i] = rho
		p.Pressure[i] = pr
		p.Temperature[i] = t
		p.Entropy[i] = s
		p.Valid[i] = true
	}
	return p, nil
}

func (p *Profile) markInvalid(i int, err error) {
	p.Rho[i] = math.NaN()
	p.Pressure[i] = math.NaN()
	p.Temperature[i] = math.NaN()
	p.Entropy[i] = math.NaN()
	p.Errs = append(p.Errs, err)
}

// InvalidCount returns the number of flagged samples.
func (p *Profile) InvalidCount() int {
	n := 0
	for _, v := range p.Valid {
		if !v {
			n++
		}
	}
	return n
}

// Field returns the named field slice. Recognized names: phi, rho, pressure,
// temperature, entropy.
func (p *Profile) Field(name string) ([]float64, error) {
	switch name {
	case "phi":
		return p.Phi, nil
	case "rho", "density":
		return p.Rho, nil
	case "pressure":
		return p.Pressure, nil
	case "temperature":
		return p.Temperature, nil
	case "entropy":
		return p.Entropy, nil
	}
	return nil, fmt.Errorf("profile: unknown field %q", name)
}
