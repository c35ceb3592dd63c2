package profile

import (
	"math"

	"github.com/san-kum/bondiprof/internal/units"
)

// Potential is the softened point-mass potential Phi(r) = -GM/sqrt(r^2+eps^2).
type Potential struct {
	Mass    float64
	Epsilon float64

	gm   float64
	eps2 float64
}

// NewPotential builds a softened potential. A non-positive softening length
// is rejected: the potential would be singular at r=0.
func NewPotential(mass, epsilon float64) (*Potential, error) {
	if mass <= 0 {
		return nil, ErrNonPositiveMass
	}
	if epsilon <= 0 {
		return nil, ErrSingularPotential
	}
	return &Potential{
		Mass:    mass,
		Epsilon: epsilon,
		gm:      units.G * mass,
		eps2:    epsilon * epsilon,
	}, nil
}

// At evaluates Phi at a single radius.
func (p *Potential) At(r float64) float64 {
	return -p.gm / math.Sqrt(r*r+p.eps2)
}

// Eval evaluates Phi element-wise over a radius sequence.
func (p *Potential) Eval(rs []float64) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = p.At(r)
	}
	return out
}

// FreeFallTime returns sqrt((r^2+eps^2)^1.5 / (2GM)).
func (p *Potential) FreeFallTime(r float64) float64 {
	return math.Sqrt(math.Pow(r*r+p.eps2, 1.5) / (2 * p.gm))
}
