// Package gaitplan synthesizes periodic locomotion gait paths from a gait
// constraint vector field defined on a two dimensional shape-space slice of
// a legged robot's configuration space. A GaitPath integrates the field into
// an open configuration-space trajectory, derives a signed family of
// amplitude-scaled sub-paths, and closes each into a periodic gait by
// appending a deadband return segment.
package gaitplan

import (
	"sort"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/gaitplan/numeric"
)

// scaledPercents are the magnitudes of the signed percentage family.
var scaledPercents = []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// ScaledPath is one member of a gait path's signed percentage family: the
// open trajectory covering that fraction of the full path, its closure, and
// summary quantities recorded for gait selection.
type ScaledPath struct {
	Percent         int
	Open            Trajectory
	Closed          Trajectory
	PathLength      float64
	NetDisplacement r3.Vector
	ShapeStart      r2.Point
	ShapeEnd        r2.Point
}

// GaitPath owns a constraint field integration and the derived trajectory
// family. Construction requires an externally-owned Registry, which issues
// the path's identifier. A GaitPath is safe for concurrent use only across
// distinct instances; no internal locking is provided.
type GaitPath struct {
	id       int
	geom     RobotGeometry
	window   IntegrationWindow
	refShape r2.Point
	logger   golog.Logger

	count  int
	family map[int]*ScaledPath
}

// NewGaitPath validates the window and returns a gait path with no computed
// trajectories. The geometry is held by composition and never mutated.
func NewGaitPath(
	geom RobotGeometry,
	window IntegrationWindow,
	refShape r2.Point,
	reg *Registry,
	logger golog.Logger,
) (*GaitPath, error) {
	if window.Back < 0 || window.Forward < 0 {
		return nil, NewNegativeWindowError(window.Back, window.Forward)
	}
	if window.Back == 0 && window.Forward == 0 {
		return nil, NewInvalidWindowError()
	}
	if reg == nil {
		return nil, errors.New("gait path registry must be provided")
	}
	return &GaitPath{
		id:       reg.NextID(),
		geom:     geom,
		window:   window,
		refShape: refShape,
		logger:   logger,
	}, nil
}

// ID returns the identifier issued by the registry at construction.
func (g *GaitPath) ID() int {
	return g.id
}

// Geometry returns the robot geometry this path was built against.
func (g *GaitPath) Geometry() RobotGeometry {
	return g.geom
}

// Regime returns the window regime resolved from the integration window.
func (g *GaitPath) Regime() WindowRegime {
	return g.window.Regime()
}

// DiscretizationCount returns the sample count used by the last successful
// ComputeTrajectory call, or zero before one.
func (g *GaitPath) DiscretizationCount() int {
	return g.count
}

// Scaled returns the family entry for a signed percentage, which must be a
// nonzero multiple of ten in [-100, 100].
func (g *GaitPath) Scaled(pct int) (*ScaledPath, error) {
	sp, ok := g.family[pct]
	if !ok {
		return nil, NewPercentageNotComputedError(pct)
	}
	return sp, nil
}

// Percentages returns the signed percentages of the computed family in
// ascending order.
func (g *GaitPath) Percentages() []int {
	out := make([]int, 0, len(g.family))
	for p := range g.family {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// ComputeTrajectory integrates the constraint field and populates the full
// signed scaled-path family, open and closed, at the given discretization
// count and duty cycle. The field's callables are treated as pure; the only
// side effect is replacing this path's own derived state.
func (g *GaitPath) ComputeTrajectory(field ConstraintField, count int, dutyCycle float64) error {
	if err := field.validate(); err != nil {
		return err
	}
	if count < 2 {
		return NewTrajectoryTooShortError(count)
	}
	if dutyCycle < 0 || dutyCycle > 1 {
		return NewInvalidDutyCycleError(dutyCycle)
	}
	regime := g.window.Regime()

	shapeStart, err := g.backtrackShape(field, regime)
	if err != nil {
		return err
	}

	plus, err := g.integrateForward(field, shapeStart, count, regime)
	if err != nil {
		return err
	}
	minus := plus.Mirror()
	if g.logger != nil {
		g.logger.Debugw("integrated reference trajectory",
			"id", g.id, "regime", regime.String(), "displacement", plus.NetDisplacement())
	}

	ip := Interpolator{Count: count}
	family := make(map[int]*ScaledPath, 2*len(scaledPercents))
	for _, pct := range scaledPercents {
		for _, signed := range []struct {
			pct  int
			full Trajectory
		}{{pct, plus}, {-pct, minus}} {
			var open Trajectory
			if pct == 100 {
				open = signed.full.clone()
			} else {
				open, err = ip.Scaled(signed.full, float64(pct)/100, regime)
				if err != nil {
					return errors.Wrapf(err, "scaling %d%% trajectory", signed.pct)
				}
			}
			closed, err := Close(open, dutyCycle)
			if err != nil {
				return errors.Wrapf(err, "closing %d%% trajectory", signed.pct)
			}
			family[signed.pct] = &ScaledPath{
				Percent:         signed.pct,
				Open:            open,
				Closed:          closed,
				PathLength:      open.PathLength(),
				NetDisplacement: open.NetDisplacement(),
				ShapeStart:      open.ShapeStart(),
				ShapeEnd:        open.ShapeEnd(),
			}
		}
	}

	g.count = count
	g.family = family
	return nil
}

// backtrackShape integrates the shape-only field backward over the window's
// backward time to find the shape-space starting point of the forward leg.
func (g *GaitPath) backtrackShape(field ConstraintField, regime WindowRegime) (r2.Point, error) {
	if regime == RegimeStartAnchored {
		return g.refShape, nil
	}
	back := func(t float64, y []float64) ([]float64, error) {
		d := field.Dphi(g.geom, r2.Point{X: y[0], Y: y[1]})
		return []float64{-d.X, -d.Y}, nil
	}
	sol, err := numeric.SolveIVP(back, 0, g.window.Back, []float64{g.refShape.X, g.refShape.Y}, 2, numeric.Options{})
	if err != nil {
		return r2.Point{}, NewIntegrationFailedError("backward", regime, err)
	}
	final := sol.Y[len(sol.Y)-1]
	return r2.Point{X: final[0], Y: final[1]}, nil
}

// integrateForward integrates the full 5-D connection field from the shape
// starting point, group coordinates zeroed, over the window's total span.
func (g *GaitPath) integrateForward(
	field ConstraintField,
	shapeStart r2.Point,
	count int,
	regime WindowRegime,
) (Trajectory, error) {
	fwd := func(t float64, y []float64) ([]float64, error) {
		shape := r2.Point{X: y[3], Y: y[4]}
		dz := field.Dz(g.geom, shape)
		dphi := field.Dphi(g.geom, shape)
		return []float64{dz.X, dz.Y, dz.Z, dphi.X, dphi.Y}, nil
	}
	y0 := []float64{0, 0, 0, shapeStart.X, shapeStart.Y}
	sol, err := numeric.SolveIVP(fwd, 0, g.window.Total(), y0, count, numeric.Options{})
	if err != nil {
		return nil, NewIntegrationFailedError("forward", regime, err)
	}

	traj := make(Trajectory, count)
	for k := range traj {
		traj[k] = Waypoint{
			T:     sol.T[k],
			X:     sol.Y[k][0],
			Y:     sol.Y[k][1],
			Theta: sol.Y[k][2],
			Shape: r2.Point{X: sol.Y[k][3], Y: sol.Y[k][4]},
		}
	}
	return traj, nil
}
