package profile

import (
	"math"

	"github.com/san-kum/bondiprof/internal/units"
)

// CoolingFunc maps temperature to the cooling coefficient Lambda. The bool
// reports whether the lookup extrapolated beyond the tabulated range.
type CoolingFunc interface {
	Eval(t float64) (float64, bool)
}

// Timescales holds the cooling and free-fall time diagnostics over a grid.
type Timescales struct {
	R        []float64
	Cooling  []float64 // s
	FreeFall []float64 // s
	Valid    []bool

	// Extrapolated counts cooling lookups that fell outside the table.
	Extrapolated int
}

// EvalTimescales computes both timescales for a closure over a grid:
//
//	t_cool = gamma*P / ((gamma-1) * n^2 * Lambda(T)),  n = rho/(mu*mp)
//	t_ff   = sqrt((r^2+eps^2)^1.5 / (2GM))
//
// Samples where the closure is invalid are flagged, mirroring Evaluate.
func EvalTimescales(c Closure, lam CoolingFunc, grid RadiusGrid) (*Timescales, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	par := c.Params()
	pot := c.Potential()
	gamma := par.Gamma

	ts := &Timescales{
		R:        make([]float64, len(grid)),
		Cooling:  make([]float64, len(grid)),
		FreeFall: make([]float64, len(grid)),
		Valid:    make([]bool, len(grid)),
	}

	for i, r := range grid {
		ts.R[i] = r
		ts.FreeFall[i] = pot.FreeFallTime(r)

		rho, err := c.Density(r)
		if err != nil {
			ts.Cooling[i] = math.NaN()
			continue
		}
		p, err := c.Pressure(r)
		if err != nil {
			ts.Cooling[i] = math.NaN()
			continue
		}
		t, err := c.Temperature(r)
		if err != nil {
			ts.Cooling[i] = math.NaN()
			continue
		}

		lambda, extrap := lam.Eval(t)
		if extrap {
			ts.Extrapolated++
		}
		n := rho / (par.Mu * units.Mp)
		ts.Cooling[i] = gamma * p / ((gamma - 1) * n * n * lambda)
		ts.Valid[i] = true
	}
	return ts, nil
}
