package profile

import (
	"math"

	"github.com/san-kum/bondiprof/internal/units"
)

// Isothermal is hydrostatic equilibrium at fixed sound speed:
//
//	rho(r) = rho0 * exp((Phi(0) - Phi(r)) / cs^2)
//
// Temperature is constant by construction; the Temperature method still
// computes it from pressure and density so the ideal-gas identity holds to
// round-off rather than by fiat.
type Isothermal struct {
	par  Params
	pot  *Potential
	cs2  float64
	phi0 float64
}

func NewIsothermal(par Params) (*Isothermal, error) {
	if err := par.Validate(); err != nil {
		return nil, err
	}
	pot, err := NewPotential(par.MBH, par.Epsilon)
	if err != nil {
		return nil, err
	}
	cs := par.SoundSpeed()
	return &Isothermal{
		par:  par,
		pot:  pot,
		cs2:  cs * cs,
		phi0: pot.At(0),
	}, nil
}

func (c *Isothermal) Name() string          { return "isothermal" }
func (c *Isothermal) Params() Params        { return c.par }
func (c *Isothermal) Potential() *Potential { return c.pot }

func (c *Isothermal) Density(r float64) (float64, error) {
	return c.par.Rho0 * math.Exp((c.phi0-c.pot.At(r))/c.cs2), nil
}

func (c *Isothermal) Pressure(r float64) (float64, error) {
	rho, err := c.Density(r)
	if err != nil {
		return math.NaN(), err
	}
	return rho * c.cs2, nil
}

func (c *Isothermal) Temperature(r float64) (float64, error) {
	rho, err := c.Density(r)
	if err != nil {
		return math.NaN(), err
	}
	p, err := c.Pressure(r)
	if err != nil {
		return math.NaN(), err
	}
	return p * c.par.Mu * units.Mp / (rho * units.KB), nil
}

// Entropy returns the adiabat P/rho^gamma. Unlike the polytropic closure it
// is not constant here; it is reported as a diagnostic only.
func (c *Isothermal) Entropy(r float64) (float64, error) {
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
