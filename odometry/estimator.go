// Package odometry reconstructs SE(2) body motion from observed or
// synthesized leg motion. Given per-leg shape trajectories, per-leg contact
// histories and a kinematic Jacobian per contact state, the estimator
// integrates a body-velocity ODE forward in time to produce a body pose
// trajectory.
package odometry

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/gaitplan/numeric"
	"go.viam.com/gaitplan/spatialmath"
)

// Jacobian maps the two shape rates to a body-frame velocity (vx, vy,
// omega) for one contact state. The returned matrix must be 3x2. Shape is
// passed as (fore, hind) position pair.
type Jacobian func(foreShape, hindShape float64) *mat.Dense

// Pose is a planar body pose in the caller's coordinate convention.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

// BodyTrajectory is the estimated body pose over the query time vector,
// one channel per DOF, in the caller's coordinate convention.
type BodyTrajectory struct {
	T     []float64
	X     []float64
	Y     []float64
	Theta []float64
}

// Estimator integrates body velocity from shape and contact data. It holds
// only immutable configuration; each Estimate call is self-contained, so an
// Estimator may be shared across goroutines.
type Estimator struct {
	jacobians map[ContactState]Jacobian
	opts      numeric.Options
	logger    golog.Logger
}

// NewEstimator returns an estimator over the given per-contact-state
// Jacobians. At least one state must be registered; states encountered
// during integration without a Jacobian fail at that point.
func NewEstimator(jacobians map[ContactState]Jacobian, logger golog.Logger) (*Estimator, error) {
	if len(jacobians) == 0 {
		return nil, errors.New("at least one contact-state jacobian is required")
	}
	jc := make(map[ContactState]Jacobian, len(jacobians))
	for state, j := range jacobians {
		if j == nil {
			return nil, NewMissingJacobianError(state)
		}
		jc[state] = j
	}
	return &Estimator{jacobians: jc, opts: numeric.Options{}, logger: logger}, nil
}

// Estimate integrates the body-velocity ODE over the query times from the
// initial pose. Shape values and rates between samples are obtained by
// spline interpolation; the active contact state, and hence the Jacobian,
// is looked up at the sample nearest each solver query time. The result has
// exactly one sample per query time.
//
// Internally the estimator works in its own axis convention (a 90 degree
// relabeling of the caller's with one axis sign-flipped); the initial pose
// is converted on the way in and every output pose on the way out.
func (e *Estimator) Estimate(
	times []float64,
	fore, hind LegInput,
	foreContact, hindContact ContactInput,
	initial Pose,
) (*BodyTrajectory, error) {
	if len(times) < 2 {
		return nil, errors.Errorf("need at least 2 query times, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, errors.Errorf("query times not strictly increasing at index %d", i)
		}
	}

	foreShape, err := fore.resolve("fore", times)
	if err != nil {
		return nil, err
	}
	hindShape, err := hind.resolve("hind", times)
	if err != nil {
		return nil, err
	}
	foreC, err := foreContact.resolve("fore", times)
	if err != nil {
		return nil, err
	}
	hindC, err := hindContact.resolve("hind", times)
	if err != nil {
		return nil, err
	}

	field := func(t float64, y []float64) ([]float64, error) {
		fPos, fRate := foreShape.at(t)
		hPos, hRate := hindShape.at(t)
		state := contactStateOf(foreC.at(t), hindC.at(t))
		jac, ok := e.jacobians[state]
		if !ok {
			return nil, NewMissingJacobianError(state)
		}
		j := jac(fPos, hPos)
		if r, c := j.Dims(); r != 3 || c != 2 {
			return nil, errors.Errorf("jacobian for contact state %q is %dx%d, want 3x2", state, r, c)
		}

		var vel mat.VecDense
		vel.MulVec(j, mat.NewVecDense(2, []float64{fRate, hRate}))
		// translational velocity follows the arc of the body rotation
		body := spatialmath.ExpSE2(r3.Vector{X: vel.AtVec(0), Y: vel.AtVec(1), Z: vel.AtVec(2)})
		wx, wy := spatialmath.Rotate2D(body.X, body.Y, y[2])
		return []float64{wx, wy, body.Z}, nil
	}

	start := toInternal(initial)
	sol, err := numeric.SolveIVP(field, times[0], times[len(times)-1], []float64{start.X, start.Y, start.Theta}, len(times), e.opts)
	if err != nil {
		return nil, errors.Wrap(err, "body velocity integration failed")
	}
	if e.logger != nil {
		e.logger.Debugw("estimated body trajectory", "samples", len(sol.T))
	}

	// the solver samples uniformly; land exactly on the caller's times
	out := &BodyTrajectory{
		T:     append([]float64(nil), times...),
		X:     make([]float64, len(times)),
		Y:     make([]float64, len(times)),
		Theta: make([]float64, len(times)),
	}
	channels := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		channels[i], err = numeric.ResampleCubic(sol.T, sol.Channel(i), times)
		if err != nil {
			return nil, errors.Wrap(err, "resampling body trajectory")
		}
	}
	for k := range times {
		p := fromInternal(Pose{X: channels[0][k], Y: channels[1][k], Theta: channels[2][k]})
		out.X[k] = p.X
		out.Y[k] = p.Y
		out.Theta[k] = p.Theta
	}
	return out, nil
}

// toInternal rotates the caller's axes into the estimator's convention:
// internal x is the caller's y, internal y is the caller's negated x.
func toInternal(p Pose) Pose {
	return Pose{X: p.Y, Y: -p.X, Theta: p.Theta}
}

// fromInternal is the exact inverse of toInternal.
func fromInternal(p Pose) Pose {
	return Pose{X: -p.Y, Y: p.X, Theta: p.Theta}
}
