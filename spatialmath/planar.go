// Package spatialmath defines planar (SE(2)) spatial mathematical operations.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// expMat returns the 2x2 matrix that maps a translational velocity to its
// one-step displacement along the arc of radius speed/omega traced while
// rotating by omega. Only valid for nonzero omega.
func expMat(omega float64) mgl64.Mat2 {
	s, c := math.Sincos(omega)
	// column-major
	return mgl64.Mat2{s / omega, (1 - c) / omega, (c - 1) / omega, s / omega}
}

// ExpSE2 is the closed-form exponential map of se(2) for a single body
// velocity sample. v holds (vx, vy) in its X and Y fields and the angular
// velocity in Z. The zero-rotation branch is exact: the displacement is the
// translational velocity unchanged.
func ExpSE2(v r3.Vector) r3.Vector {
	if v.Z == 0 {
		return v
	}
	d := expMat(v.Z).Mul2x1(mgl64.Vec2{v.X, v.Y})
	return r3.Vector{X: d.X(), Y: d.Y(), Z: v.Z}
}

// PlanarExponential applies ExpSE2 to a row-major batch of body velocity
// samples, one (vx, vy, omega) triple per row. A single length-3 vector may
// be passed as either a 1x3 row or a 3x1 column. Each row is classified
// independently; rows with zero angular velocity never touch the singular
// arc transform. Inputs that are empty, have the wrong number of columns,
// or contain non-finite values are rejected with an invalid input error.
func PlanarExponential(samples mat.Matrix) (*mat.Dense, error) {
	r, c := samples.Dims()
	if r == 0 || c == 0 {
		return nil, NewInvalidInputError("input is empty")
	}
	if c != 3 {
		if r == 3 && c == 1 {
			// accept a single column vector by transposition
			samples = samples.T()
			r, c = 1, 3
		} else {
			return nil, NewInvalidInputError("input must have exactly 3 columns")
		}
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		vx, vy, w := samples.At(i, 0), samples.At(i, 1), samples.At(i, 2)
		if !isFinite(vx) || !isFinite(vy) || !isFinite(w) {
			return nil, NewInvalidInputError("input contains a non-finite value")
		}
		d := ExpSE2(r3.Vector{X: vx, Y: vy, Z: w})
		out.Set(i, 0, d.X)
		out.Set(i, 1, d.Y)
		out.Set(i, 2, d.Z)
	}
	return out, nil
}

// Rotate2D rotates the planar vector (x, y) by theta radians.
func Rotate2D(x, y, theta float64) (float64, float64) {
	v := mgl64.Rotate2D(theta).Mul2x1(mgl64.Vec2{x, y})
	return v.X(), v.Y()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
