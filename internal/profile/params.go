package profile

import (
	"math"

	"github.com/san-kum/bondiprof/internal/units"
)

// Params is the immutable scenario description. All values are CGS; derived
// quantities are pure functions of the struct so a Params value can be shared
// freely between closures and tests.
type Params struct {
	MBH     float64 // black hole mass, g
	VBH     float64 // black hole velocity relative to the gas, cm/s
	TAmb    float64 // ambient temperature, K
	Rho0    float64 // reference density at r=0 (isothermal), g/cm^3
	TCGM    float64 // circumgalactic medium temperature, K
	RhoCGM  float64 // circumgalactic medium density, g/cm^3
	RVir    float64 // virial anchor radius, cm
	Epsilon float64 // softening length, cm
	Gamma   float64 // adiabatic index
	Mu      float64 // mean molecular weight
}

func (p Params) Validate() error {
	if p.MBH <= 0 {
		return ErrNonPositiveMass
	}
	if p.Epsilon <= 0 {
		return ErrSingularPotential
	}
	if p.TAmb <= 0 || p.TCGM <= 0 || p.Rho0 <= 0 || p.RhoCGM <= 0 || p.RVir <= 0 || p.Mu <= 0 {
		return ErrBadParams
	}
	return nil
}

// SoundSpeed returns the ambient isothermal sound speed sqrt(kB*T/(mu*mp)).
func (p Params) SoundSpeed() float64 {
	return math.Sqrt(units.KB * p.TAmb / (p.Mu * units.Mp))
}

// BondiRadius returns 2GM/(cs^2 + v^2).
func (p Params) BondiRadius() float64 {
	cs := p.SoundSpeed()
	return 2 * units.G * p.MBH / (cs*cs + p.VBH*p.VBH)
}

// VirialTemperature returns G*M*mp/(r_vir*kB), the temperature at which the
// thermal energy of a proton balances the potential at the anchor radius.
func (p Params) VirialTemperature() float64 {
	return units.G * p.MBH * units.Mp / (p.RVir * units.KB)
}

// VirialDensity returns the density in pressure equilibrium with the CGM at
// the anchor radius.
func (p Params) VirialDensity() float64 {
	return p.RhoCGM * p.TCGM / p.VirialTemperature()
}

// PolytropicK returns K = (kB*T_vir/(mu*mp)) * rho_vir^(1-gamma), fixed once
// by the virial anchor.
func (p Params) PolytropicK() float64 {
	return (units.KB * p.VirialTemperature() / (p.Mu * units.Mp)) *
		math.Pow(p.VirialDensity(), 1-p.Gamma)
}

// CentralDensity returns the density at r=0 implied by polytropic equilibrium
// when the central temperature equals TAmb.
func (p Params) CentralDensity() float64 {
	return p.VirialDensity() * math.Pow(p.TAmb/p.VirialTemperature(), 1/(p.Gamma-1))
}
