package numeric

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestSolveIVPExponentialDecay(t *testing.T) {
	// y' = -y, y(0) = 1 has the exact solution e^-t
	field := func(t float64, y []float64) ([]float64, error) {
		return []float64{-y[0]}, nil
	}
	sol, err := SolveIVP(field, 0, 2, []float64{1}, 51, Options{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(sol.T), test.ShouldEqual, 51)
	test.That(t, len(sol.Y), test.ShouldEqual, 51)
	test.That(t, sol.T[0], test.ShouldEqual, 0)
	test.That(t, sol.T[50], test.ShouldEqual, 2)
	for i, ti := range sol.T {
		test.That(t, sol.Y[i][0], test.ShouldAlmostEqual, math.Exp(-ti), 1e-6)
	}
}

func TestSolveIVPHarmonicOscillator(t *testing.T) {
	// y'' = -y integrated as a 2-D first order system over one full period
	field := func(t float64, y []float64) ([]float64, error) {
		return []float64{y[1], -y[0]}, nil
	}
	sol, err := SolveIVP(field, 0, 2*math.Pi, []float64{1, 0}, 101, Options{})
	test.That(t, err, test.ShouldBeNil)
	last := sol.Y[100]
	test.That(t, last[0], test.ShouldAlmostEqual, 1, 1e-5)
	test.That(t, last[1], test.ShouldAlmostEqual, 0, 1e-5)
}

func TestSolveIVPValidation(t *testing.T) {
	ok := func(t float64, y []float64) ([]float64, error) { return []float64{0}, nil }

	_, err := SolveIVP(ok, 0, 1, []float64{0}, 1, Options{})
	test.That(t, err, test.ShouldNotBeNil)

	_, err = SolveIVP(ok, 1, 1, []float64{0}, 10, Options{})
	test.That(t, err, test.ShouldNotBeNil)

	_, err = SolveIVP(ok, 0, 1, nil, 10, Options{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSolveIVPFieldFailure(t *testing.T) {
	boom := errors.New("sensor dropout")
	field := func(t float64, y []float64) ([]float64, error) {
		if t > 0.5 {
			return nil, boom
		}
		return []float64{1}, nil
	}
	_, err := SolveIVP(field, 0, 1, []float64{0}, 11, Options{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Cause(err), test.ShouldEqual, boom)
}

func TestSolutionChannel(t *testing.T) {
	field := func(t float64, y []float64) ([]float64, error) {
		return []float64{1, 2}, nil
	}
	sol, err := SolveIVP(field, 0, 1, []float64{0, 0}, 11, Options{})
	test.That(t, err, test.ShouldBeNil)
	ch := sol.Channel(1)
	test.That(t, len(ch), test.ShouldEqual, 11)
	test.That(t, ch[10], test.ShouldAlmostEqual, 2, 1e-9)
}
