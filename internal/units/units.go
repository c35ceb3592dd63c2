package units

import "math"

// Physical constants in CGS.
const (
	G    = 6.67e-8  // cm^3 g^-1 s^-2
	KB   = 1.38e-16 // erg K^-1
	Mp   = 1.67e-24 // g
	Pc   = 3.086e18 // cm
	Kpc  = 1e3 * Pc
	Msun = 1.989e33 // g
	Yr   = 3.154e7  // s
	Myr  = 1e6 * Yr
	KmS  = 1e5 // cm s^-1
)

// CodeUnits defines the three base scales of the code-unit system. Every
// other scale is derived from these, so converting to code units and back is
// a pure multiply/divide round trip.
type CodeUnits struct {
	Length   float64 // cm
	Velocity float64 // cm/s
	Density  float64 // g/cm^3
}

// DefaultCodeUnits returns the scales used by the shipped scenarios:
// 1 kpc, 10 km/s and 1 mp/cm^3.
func DefaultCodeUnits() CodeUnits {
	return CodeUnits{Length: Kpc, Velocity: 1e6, Density: Mp}
}

func (c CodeUnits) Mass() float64     { return c.Density * c.Length * c.Length * c.Length }
func (c CodeUnits) Time() float64     { return c.Length / c.Velocity }
func (c CodeUnits) Pressure() float64 { return c.Density * c.Velocity * c.Velocity }

// Temperature returns the temperature scale for mean molecular weight mu.
func (c CodeUnits) Temperature(mu float64) float64 {
	return (mu * Mp / KB) * c.Velocity * c.Velocity
}

// GravConst returns G expressed in code units.
func (c CodeUnits) GravConst() float64 {
	t := c.Time()
	return G * c.Density * t * t
}

// PolytropicK rescales a polytropic constant K (CGS) into code units.
func (c CodeUnits) PolytropicK(k, gamma float64) float64 {
	return k * math.Pow(c.Density, gamma) / c.Pressure()
}

// ToCode converts a physical value to code units given its scale factor.
func ToCode(value, scale float64) float64 { return value / scale }

// FromCode converts a code-unit value back to physical units.
func FromCode(value, scale float64) float64 { return value * scale }

func (c CodeUnits) Valid() bool {
	return c.Length > 0 && c.Velocity > 0 && c.Density > 0
}
