package odometry

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestNewSinusoid(t *testing.T) {
	s, err := NewSinusoid([]float64{2, 0.5, math.Pi, 0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.position(0), test.ShouldAlmostEqual, 1)
	test.That(t, s.position(0.5), test.ShouldAlmostEqual, 1+2*0.5, 1e-12)
	test.That(t, s.rate(0), test.ShouldAlmostEqual, 2*0.5*math.Pi, 1e-12)

	for _, bad := range [][]float64{nil, {1}, {1, 2, 3, 4}, {1, 2, 3, 4, 5, 6}} {
		_, err := NewSinusoid(bad)
		test.That(t, err, test.ShouldNotBeNil)
	}
}

func TestLegInputResolve(t *testing.T) {
	times := []float64{0, 0.25, 0.5, 0.75, 1}

	t.Run("literal series length mismatch names the leg", func(t *testing.T) {
		_, err := LegInput{Series: &ShapeSeries{
			Position: []float64{0, 1},
			Rate:     []float64{1, 1, 1, 1, 1},
		}}.resolve("hind", times)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "hind leg")
	})

	t.Run("sinusoid generates the series", func(t *testing.T) {
		sin, err := NewSinusoid([]float64{1, 1, 2 * math.Pi, 0, 0})
		test.That(t, err, test.ShouldBeNil)
		ls, err := LegInput{Sinusoid: &sin}.resolve("fore", times)
		test.That(t, err, test.ShouldBeNil)
		pos, rate := ls.at(0.25)
		test.That(t, pos, test.ShouldAlmostEqual, 1, 1e-9)
		test.That(t, rate, test.ShouldAlmostEqual, 0, 1e-9)
	})

	t.Run("interpolates between samples", func(t *testing.T) {
		ls, err := LegInput{Series: &ShapeSeries{
			Position: []float64{0, 0.25, 0.5, 0.75, 1},
			Rate:     []float64{1, 1, 1, 1, 1},
		}}.resolve("fore", times)
		test.That(t, err, test.ShouldBeNil)
		pos, rate := ls.at(0.6)
		test.That(t, pos, test.ShouldAlmostEqual, 0.6, 1e-9)
		test.That(t, rate, test.ShouldAlmostEqual, 1, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := LegInput{}.resolve("fore", times)
		test.That(t, err, test.ShouldNotBeNil)
	})
}
