package profile

import (
	"errors"
	"fmt"
)

// Domain errors for profile evaluation.
var (
	// ErrSingularPotential indicates a softening length of zero or less; the
	// point-mass potential diverges at r=0 without it.
	ErrSingularPotential = errors.New("profile: softening length must be positive")

	// ErrNonPositiveMass indicates a black hole mass of zero or less.
	ErrNonPositiveMass = errors.New("profile: black hole mass must be positive")

	// ErrUnitGamma indicates gamma == 1, which has no polytropic closure.
	ErrUnitGamma = errors.New("profile: adiabatic index must differ from 1")

	// ErrNegativeBracket indicates the polytropic bracket term went negative,
	// an inconsistent gamma/K/potential combination.
	ErrNegativeBracket = errors.New("profile: negative bracket term in polytropic density")

	// ErrNegativeDensity indicates the polytropic density formula produced a
	// non-physical negative value at some radius.
	ErrNegativeDensity = errors.New("profile: negative density")

	// ErrBadParams indicates a non-positive temperature or density parameter.
	ErrBadParams = errors.New("profile: temperatures and densities must be positive")

	// ErrEmptyGrid indicates a radius grid with no samples.
	ErrEmptyGrid = errors.New("profile: radius grid is empty")

	// ErrGridOrder indicates a radius grid that is not strictly increasing.
	ErrGridOrder = errors.New("profile: radius grid must be strictly increasing")
)

// SampleError flags a single invalid radius sample. Evaluation continues past
// it; the sample is recorded as NaN with Valid=false.
type SampleError struct {
	Radius  float64
	Wrapped error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("r=%.6e cm: %v", e.Radius, e.Wrapped)
}

func (e *SampleError) Unwrap() error {
	return e.Wrapped
}
