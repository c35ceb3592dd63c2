package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedScales(t *testing.T) {
	c := DefaultCodeUnits()

	assert.Equal(t, Mp*Kpc*Kpc*Kpc, c.Mass(), "mass scale")
	assert.Equal(t, Kpc/1e6, c.Time(), "time scale")
	assert.Equal(t, Mp*1e12, c.Pressure(), "pressure scale")
}

func TestTemperatureScale(t *testing.T) {
	c := DefaultCodeUnits()

	// T_code = (mu*mp/kB) * v^2
	want := (1.0 * Mp / KB) * 1e12
	assert.InEpsilon(t, want, c.Temperature(1.0), 1e-12)

	// doubling mu doubles the scale
	assert.InEpsilon(t, 2*want, c.Temperature(2.0), 1e-12)
}

func TestRoundTrip(t *testing.T) {
	c := DefaultCodeUnits()
	values := []float64{1e-3 * Mp, 2.5e18, 1e7, 3.086e21}
	scales := []float64{c.Density, c.Length, c.Velocity, c.Mass()}

	for i, v := range values {
		got := FromCode(ToCode(v, scales[i]), scales[i])
		assert.InEpsilon(t, v, got, 1e-14, "round trip %d", i)
	}
}

func TestGravConst(t *testing.T) {
	c := DefaultCodeUnits()
	g := c.GravConst()
	assert.True(t, g > 0)

	tc := c.Time()
	assert.InEpsilon(t, G*c.Density*tc*tc, g, 1e-14)
}

func TestPolytropicKRescale(t *testing.T) {
	c := DefaultCodeUnits()
	gamma := 5.0 / 3.0
	k := 2.91e28

	kc := c.PolytropicK(k, gamma)
	// invert the rescaling by hand
	back := kc * c.Pressure() / math.Pow(c.Density, gamma)
	assert.InEpsilon(t, k, back, 1e-12)
}

func TestValid(t *testing.T) {
	assert.True(t, DefaultCodeUnits().Valid())
	assert.False(t, CodeUnits{Length: -1, Velocity: 1, Density: 1}.Valid())
	assert.False(t, CodeUnits{}.Valid())
}
