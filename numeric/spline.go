package numeric

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"
)

// ResampleCubic fits a natural cubic spline through the knots (xs, ys) and
// evaluates it at each query point in xq. xs must be strictly increasing and
// all knots finite; queries outside [xs[0], xs[len-1]] are rejected rather
// than extrapolated.
func ResampleCubic(xs, ys, xq []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, errors.Errorf("knot length mismatch: %d xs vs %d ys", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, errors.Errorf("need at least 2 knots, got %d", len(xs))
	}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return nil, errors.Errorf("non-finite knot at index %d", i)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, errors.Errorf("knot abscissae not strictly increasing at index %d", i)
		}
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil {
		return nil, errors.Wrap(err, "spline fit")
	}

	lo, hi := xs[0], xs[len(xs)-1]
	out := make([]float64, len(xq))
	for i, x := range xq {
		// tolerate endpoint rounding from grid construction
		if x < lo {
			if lo-x > 1e-9*(hi-lo) {
				return nil, errors.Errorf("query %v below knot range [%v, %v]", x, lo, hi)
			}
			x = lo
		}
		if x > hi {
			if x-hi > 1e-9*(hi-lo) {
				return nil, errors.Errorf("query %v above knot range [%v, %v]", x, lo, hi)
			}
			x = hi
		}
		out[i] = spline.Predict(x)
	}
	return out, nil
}
