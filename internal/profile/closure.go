package profile

// Closure is an equilibrium closure: a set of pure field functions of radius
// for a fixed Params. Implementations hold no mutable state, so a closure can
// be evaluated repeatedly and concurrently with identical results.
//
// Field functions return a *SampleError (wrapping ErrNegativeBracket or
// ErrNegativeDensity) for radii where the closure has no physical solution;
// callers are expected to flag the sample and continue.
type Closure interface {
	Name() string
	Params() Params
	Potential() *Potential

	Density(r float64) (float64, error)
	Pressure(r float64) (float64, error)
	Temperature(r float64) (float64, error)
	Entropy(r float64) (float64, error)
}
