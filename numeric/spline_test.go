package numeric

import (
	"testing"

	"go.viam.com/test"
)

func TestResampleCubic(t *testing.T) {
	t.Run("reproduces a line exactly", func(t *testing.T) {
		xs := []float64{0, 1, 2, 3}
		ys := []float64{0, 2, 4, 6}
		out, err := ResampleCubic(xs, ys, []float64{0.5, 1.5, 2.5})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out[0], test.ShouldAlmostEqual, 1, 1e-9)
		test.That(t, out[1], test.ShouldAlmostEqual, 3, 1e-9)
		test.That(t, out[2], test.ShouldAlmostEqual, 5, 1e-9)
	})

	t.Run("interpolates knots exactly", func(t *testing.T) {
		xs := []float64{0, 0.7, 1.3, 2.2, 3}
		ys := []float64{1, -0.5, 2, 0.25, 1.5}
		out, err := ResampleCubic(xs, ys, xs)
		test.That(t, err, test.ShouldBeNil)
		for i := range xs {
			test.That(t, out[i], test.ShouldAlmostEqual, ys[i], 1e-9)
		}
	})

	t.Run("rejects bad knots", func(t *testing.T) {
		_, err := ResampleCubic([]float64{0, 1}, []float64{0}, nil)
		test.That(t, err, test.ShouldNotBeNil)

		_, err = ResampleCubic([]float64{0, 0}, []float64{1, 2}, nil)
		test.That(t, err, test.ShouldNotBeNil)

		_, err = ResampleCubic([]float64{1}, []float64{2}, nil)
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("rejects out of range queries", func(t *testing.T) {
		_, err := ResampleCubic([]float64{0, 1, 2}, []float64{0, 1, 0}, []float64{2.5})
		test.That(t, err, test.ShouldNotBeNil)
	})
}
