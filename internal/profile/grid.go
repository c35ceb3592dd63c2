package profile

import "math"

// RadiusGrid is an ordered, strictly increasing sequence of radius samples.
type RadiusGrid []float64

// Linspace returns n linearly spaced radii over [rmin, rmax].
func Linspace(rmin, rmax float64, n int) (RadiusGrid, error) {
	if n < 2 || rmax <= rmin {
		return nil, ErrGridOrder
	}
	g := make(RadiusGrid, n)
	step := (rmax - rmin) / float64(n-1)
	for i := range g {
		g[i] = rmin + float64(i)*step
	}
	g[n-1] = rmax
	return g, nil
}

// Logspace returns n logarithmically spaced radii over [rmin, rmax].
// rmin must be positive.
func Logspace(rmin, rmax float64, n int) (RadiusGrid, error) {
	if n < 2 || rmin <= 0 || rmax <= rmin {
		return nil, ErrGridOrder
	}
	g := make(RadiusGrid, n)
	lmin, lmax := math.Log10(rmin), math.Log10(rmax)
	step := (lmax - lmin) / float64(n-1)
	for i := range g {
		g[i] = math.Pow(10, lmin+float64(i)*step)
	}
	g[0], g[n-1] = rmin, rmax
	return g, nil
}

func (g RadiusGrid) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGrid
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			return ErrGridOrder
		}
	}
	return nil
}
