package profile

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/bondiprof/internal/units"
)

func TestPotentialRejectsZeroSoftening(t *testing.T) {
	_, err := NewPotential(2e7*units.Msun, 0)
	if !errors.Is(err, ErrSingularPotential) {
		t.Fatalf("expected ErrSingularPotential, got %v", err)
	}

	_, err = NewPotential(2e7*units.Msun, -units.Pc)
	if !errors.Is(err, ErrSingularPotential) {
		t.Fatalf("expected ErrSingularPotential for negative epsilon, got %v", err)
	}
}

func TestPotentialRejectsNonPositiveMass(t *testing.T) {
	_, err := NewPotential(0, units.Pc)
	if !errors.Is(err, ErrNonPositiveMass) {
		t.Fatalf("expected ErrNonPositiveMass, got %v", err)
	}
}

func TestPotentialFiniteNegativeIncreasing(t *testing.T) {
	pot, err := NewPotential(2e7*units.Msun, 10*units.Pc)
	if err != nil {
		t.Fatal(err)
	}

	grid, err := Logspace(0.01*units.Pc, 1e3*units.Pc, 500)
	if err != nil {
		t.Fatal(err)
	}

	prev := pot.At(0)
	if math.IsInf(prev, 0) || math.IsNaN(prev) {
		t.Fatalf("Phi(0) not finite: %v", prev)
	}
	for _, r := range grid {
		phi := pot.At(r)
		if math.IsInf(phi, 0) || math.IsNaN(phi) {
			t.Fatalf("Phi(%g) not finite", r)
		}
		if phi >= 0 {
			t.Fatalf("Phi(%g) = %g, want negative", r, phi)
		}
		if phi <= prev {
			t.Fatalf("Phi not strictly increasing at r=%g", r)
		}
		prev = phi
	}
}

func TestPotentialClosedForm(t *testing.T) {
	m := 2e7 * units.Msun
	eps := 10 * units.Pc
	pot, err := NewPotential(m, eps)
	if err != nil {
		t.Fatal(err)
	}

	r := 100 * units.Pc
	want := -units.G * m / math.Sqrt(r*r+eps*eps)
	if got := pot.At(r); got != want {
		t.Fatalf("Phi(r) = %g, want %g", got, want)
	}
	if got := pot.At(0); got != -units.G*m/eps {
		t.Fatalf("Phi(0) = %g, want %g", got, -units.G*m/eps)
	}
}

func TestFreeFallTimeAtCenter(t *testing.T) {
	m := 2e7 * units.Msun
	eps := 10 * units.Pc
	pot, err := NewPotential(m, eps)
	if err != nil {
		t.Fatal(err)
	}

	want := math.Sqrt(eps * eps * eps / (2 * units.G * m))
	got := pot.FreeFallTime(0)
	if math.Abs(got-want)/want > 1e-12 {
		t.Fatalf("t_ff(0) = %g, want %g", got, want)
	}
}

func TestPotentialEval(t *testing.T) {
	pot, err := NewPotential(2e7*units.Msun, 10*units.Pc)
	if err != nil {
		t.Fatal(err)
	}
	rs := []float64{0, units.Pc, 10 * units.Pc}
	phis := pot.Eval(rs)
	if len(phis) != len(rs) {
		t.Fatalf("expected %d values, got %d", len(rs), len(phis))
	}
	for i, r := range rs {
		if phis[i] != pot.At(r) {
			t.Errorf("Eval[%d] mismatch", i)
		}
	}
}
