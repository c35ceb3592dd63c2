package profile

import (
	"math"

	"github.com/san-kum/bondiprof/internal/units"
)

// Polytropic is adiabatic equilibrium P = K*rho^gamma, with K fixed once by
// the virial anchor (T_vir, rho_vir at r_vir):
//
//	rho(r) = rho_vir + b(r)^(1/(gamma-1)) - b(r_vir)^(1/(gamma-1))
//	b(r)   = -(gamma-1)/(K*gamma) * Phi(r)
//
// The anchor term b(r_vir) is evaluated through the same bracket function as
// every other radius, so rho(r_vir) == rho_vir holds exactly and r=0 takes no
// special-cased shortcut.
type Polytropic struct {
	par     Params
	pot     *Potential
	k       float64
	rhoVir  float64
	invGm1  float64
	refTerm float64
}

func NewPolytropic(par Params) (*Polytropic, error) {
	if err := par.Validate(); err != nil {
		return nil, err
	}
	if par.Gamma == 1 {
		return nil, ErrUnitGamma
	}
	pot, err := NewPotential(par.MBH, par.Epsilon)
	if err != nil {
		return nil, err
	}
	c := &Polytropic{
		par:    par,
		pot:    pot,
		k:      par.PolytropicK(),
		rhoVir: par.VirialDensity(),
		invGm1: 1 / (par.Gamma - 1),
	}
	ref := c.bracket(par.RVir)
	if ref < 0 {
		return nil, &SampleError{Radius: par.RVir, Wrapped: ErrNegativeBracket}
	}
	c.refTerm = math.Pow(ref, c.invGm1)
	return c, nil
}

func (c *Polytropic) Name() string          { return "polytropic" }
func (c *Polytropic) Params() Params        { return c.par }
func (c *Polytropic) Potential() *Potential { return c.pot }

// K returns the polytropic constant the closure was anchored with.
func (c *Polytropic) K() float64 { return c.k }

func (c *Polytropic) bracket(r float64) float64 {
	return -(c.par.Gamma - 1) / (c.k * c.par.Gamma) * c.pot.At(r)
}

func (c *Polytropic) Density(r float64) (float64, error) {
	b := c.bracket(r)
	if b < 0 {
		return math.NaN(), &SampleError{Radius: r, Wrapped: ErrNegativeBracket}
	}
	// Grouped so the two bracket terms cancel exactly at the anchor radius,
	// making rho(r_vir) == rho_vir with no round-off.
	rho := c.rhoVir + (math.Pow(b, c.invGm1) - c.refTerm)
	if rho < 0 {
		return math.NaN(), &SampleError{Radius: r, Wrapped: ErrNegativeDensity}
	}
	return rho, nil
}

func (c *Polytropic) Pressure(r float64) (float64, error) {
	rho, err := c.Density(r)
	if err != nil {
		return math.NaN(), err
	}
	return c.k * math.Pow(rho, c.par.Gamma), nil
}

func (c *Polytropic) Temperature(r float64) (float64, error) {
	rho, err := c.Density(r)
	if err != nil {
		return math.NaN(), err
	}
	return (c.k * c.par.Mu * units.Mp / units.KB) * math.Pow(rho, c.par.Gamma-1), nil
}

// Entropy returns P/rho^gamma, identically K up to round-off. It is computed
// from the profile rather than returned as the constant so the identity is a
// real consistency check.
func (c *Polytropic) Entropy(r float64) (float64, error) {
	rho, err := c.Density(r)
	if err != nil {
		return math.NaN(), err
	}
	p, err := c.Pressure(r)
	if err != nil {
		return math.NaN(), err
	}
	return p / math.Pow(rho, c.par.Gamma), nil
}
