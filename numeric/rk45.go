// Package numeric provides the numeric substrate used by the gait planner:
// an adaptive Runge-Kutta-Fehlberg 4(5) initial value solver that samples its
// solution onto a uniform output grid, and cubic spline resampling built on
// gonum's interp package. Both are synchronous pure functions that return a
// complete result or fail outright.
package numeric

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Field evaluates the right-hand side of an ODE y' = f(t, y).
type Field func(t float64, y []float64) ([]float64, error)

// Options tune the adaptive stepper. The zero value selects defaults.
type Options struct {
	RelTol   float64 // relative error tolerance per step (default 1e-8)
	AbsTol   float64 // absolute error tolerance per step (default 1e-10)
	MaxSteps int     // attempted steps before giving up (default 100000)
}

func (o Options) withDefaults() Options {
	if o.RelTol <= 0 {
		o.RelTol = 1e-8
	}
	if o.AbsTol <= 0 {
		o.AbsTol = 1e-10
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = 100000
	}
	return o
}

// Solution is an ODE solution sampled on a uniform time grid.
type Solution struct {
	T []float64
	Y [][]float64
}

// Fehlberg 4(5) tableau.
var (
	rkC = [6]float64{0, 1.0 / 4, 3.0 / 8, 12.0 / 13, 1, 1.0 / 2}
	rkA = [6][5]float64{
		{},
		{1.0 / 4},
		{3.0 / 32, 9.0 / 32},
		{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197},
		{439.0 / 216, -8, 3680.0 / 513, -845.0 / 4104},
		{-8.0 / 27, 2, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40},
	}
	rkB5 = [6]float64{16.0 / 135, 0, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55}
	rkB4 = [6]float64{25.0 / 216, 0, 1408.0 / 2565, 2197.0 / 4104, -1.0 / 5, 0}
)

// SolveIVP integrates y' = field(t, y) from t0 to t1 with an adaptive
// Fehlberg 4(5) stepper and returns the solution sampled on a uniform grid
// of n points spanning [t0, t1]. Steps are clamped so that every grid point
// is hit exactly; the 5th order estimate is propagated. Any non-finite state
// or derivative, or exhaustion of the step budget, aborts with an error
// carrying the failing time.
func SolveIVP(field Field, t0, t1 float64, y0 []float64, n int, opts Options) (*Solution, error) {
	if n < 2 {
		return nil, errors.Errorf("need at least 2 output samples, got %d", n)
	}
	if !(t1 > t0) {
		return nil, errors.Errorf("time span [%v, %v] is not increasing", t0, t1)
	}
	if len(y0) == 0 {
		return nil, errors.New("empty initial condition")
	}
	opts = opts.withDefaults()

	dim := len(y0)
	grid := floats.Span(make([]float64, n), t0, t1)
	sol := &Solution{T: grid, Y: make([][]float64, n)}
	sol.Y[0] = append([]float64(nil), y0...)

	y := append([]float64(nil), y0...)
	t := t0
	h := (t1 - t0) / float64(n-1)
	hMin := (t1 - t0) * 1e-14
	steps := 0

	k := make([][]float64, 6)
	ytmp := make([]float64, dim)
	y5 := make([]float64, dim)
	y4 := make([]float64, dim)

	for gi := 1; gi < n; gi++ {
		target := grid[gi]
		for t < target {
			if steps++; steps > opts.MaxSteps {
				return nil, errors.Errorf("step budget exhausted at t=%v", t)
			}
			clamped := false
			if t+h >= target {
				h = target - t
				clamped = true
			}
			if h < hMin {
				// close enough to the grid point to accept directly
				if clamped {
					t = target
					break
				}
				return nil, errors.Errorf("step size underflow at t=%v", t)
			}

			// evaluate the six stages
			failed := false
			for s := 0; s < 6; s++ {
				copy(ytmp, y)
				for j := 0; j < s; j++ {
					if rkA[s][j] != 0 {
						floats.AddScaled(ytmp, h*rkA[s][j], k[j])
					}
				}
				ks, err := field(t+rkC[s]*h, ytmp)
				if err != nil {
					return nil, errors.Wrapf(err, "field evaluation at t=%v", t+rkC[s]*h)
				}
				if len(ks) != dim {
					return nil, errors.Errorf("field returned %d derivatives, want %d", len(ks), dim)
				}
				if !allFinite(ks) {
					failed = true
					break
				}
				k[s] = append(k[s][:0], ks...)
			}
			if failed {
				// retry the step at half size rather than propagating NaN
				h /= 2
				continue
			}

			copy(y5, y)
			copy(y4, y)
			for s := 0; s < 6; s++ {
				if rkB5[s] != 0 {
					floats.AddScaled(y5, h*rkB5[s], k[s])
				}
				if rkB4[s] != 0 {
					floats.AddScaled(y4, h*rkB4[s], k[s])
				}
			}

			// per-step error against the mixed tolerance
			errNorm := 0.0
			for i := 0; i < dim; i++ {
				scale := opts.AbsTol + opts.RelTol*math.Max(math.Abs(y[i]), math.Abs(y5[i]))
				errNorm = math.Max(errNorm, math.Abs(y5[i]-y4[i])/scale)
			}

			if errNorm <= 1 {
				t += h
				copy(y, y5)
				if !allFinite(y) {
					return nil, errors.Errorf("solution became non-finite at t=%v", t)
				}
			}

			// standard 4(5) step size update, bounded growth/shrink
			factor := 2.0
			if errNorm > 0 {
				factor = 0.9 * math.Pow(1/errNorm, 0.2)
				factor = math.Min(math.Max(factor, 0.1), 2.0)
			}
			h *= factor
		}
		sol.Y[gi] = append([]float64(nil), y...)
		t = target
	}
	return sol, nil
}

// Channel extracts the i-th state channel across all samples.
func (s *Solution) Channel(i int) []float64 {
	ch := make([]float64, len(s.Y))
	for j, y := range s.Y {
		ch[j] = y[i]
	}
	return ch
}

func allFinite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
