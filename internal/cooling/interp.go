package cooling

import "sort"

// Interp is a 1-D linear interpolant over strictly increasing nodes. Queries
// outside the node range extrapolate linearly along the end segments (the
// same policy as scipy's interp1d with fill_value='extrapolate'); Eval
// reports such lookups so callers can count them.
type Interp struct {
	xs, ys []float64
}

func NewInterp(xs, ys []float64) (*Interp, error) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return nil, ErrEmptyTable
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrUnsorted
		}
	}
	return &Interp{xs: xs, ys: ys}, nil
}

// Min and Max bound the tabulated domain.
func (in *Interp) Min() float64 { return in.xs[0] }
func (in *Interp) Max() float64 { return in.xs[len(in.xs)-1] }

// Eval returns the interpolated value at x and whether x fell outside the
// tabulated domain. Exact at every node.
func (in *Interp) Eval(x float64) (float64, bool) {
	extrap := x < in.Min() || x > in.Max()

	// Index of the segment [xs[i], xs[i+1]] to interpolate on; end segments
	// double as extrapolation rays.
	i := sort.SearchFloat64s(in.xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > len(in.xs)-2 {
		i = len(in.xs) - 2
	}
	// Exact at nodes, no round-off through the segment formula.
	if x == in.xs[i] {
		return in.ys[i], extrap
	}
	if x == in.xs[i+1] {
		return in.ys[i+1], extrap
	}

	x1, x2 := in.xs[i], in.xs[i+1]
	y1, y2 := in.ys[i], in.ys[i+1]
	return y1 + (y2-y1)/(x2-x1)*(x-x1), extrap
}

// EvalAll evaluates the interpolant over xs, returning the values and the
// number of extrapolated lookups.
func (in *Interp) EvalAll(xs []float64) ([]float64, int) {
	out := make([]float64, len(xs))
	n := 0
	for i, x := range xs {
		v, extrap := in.Eval(x)
		out[i] = v
		if extrap {
			n++
		}
	}
	return out, n
}
