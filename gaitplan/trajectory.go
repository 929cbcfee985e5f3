package gaitplan

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Waypoint is a single sample of a configuration-space trajectory: elapsed
// time, accumulated group displacement (x, y, theta) and the absolute shape
// coordinates at that instant.
type Waypoint struct {
	T     float64
	X     float64
	Y     float64
	Theta float64
	Shape r2.Point
}

// Trajectory is an ordered sequence of waypoints with strictly increasing
// time. Group coordinates are zero at the first sample: a trajectory
// represents displacement accumulated by integrating the connection, not an
// absolute pose. Derived trajectories are always independent copies.
type Trajectory []Waypoint

// NetDisplacement returns the accumulated group displacement at the last
// sample.
func (traj Trajectory) NetDisplacement() r3.Vector {
	if len(traj) == 0 {
		return r3.Vector{}
	}
	last := traj[len(traj)-1]
	return r3.Vector{X: last.X, Y: last.Y, Z: last.Theta}
}

// PathLength returns the trajectory's final time.
func (traj Trajectory) PathLength() float64 {
	if len(traj) == 0 {
		return 0
	}
	return traj[len(traj)-1].T
}

// ShapeStart returns the shape coordinates of the first sample.
func (traj Trajectory) ShapeStart() r2.Point {
	if len(traj) == 0 {
		return r2.Point{}
	}
	return traj[0].Shape
}

// ShapeEnd returns the shape coordinates of the last sample.
func (traj Trajectory) ShapeEnd() r2.Point {
	if len(traj) == 0 {
		return r2.Point{}
	}
	return traj[len(traj)-1].Shape
}

// Mirror returns the negative-direction counterpart of the trajectory: the
// same geometric path traversed backward from the opposite end. Sample order
// is reversed and group displacement is re-expressed relative to the final
// sample, so the mirror starts at zero and its net displacement is the
// negation of the original's. Shape samples keep their absolute values, in
// reversed order, and the time grid is unchanged.
func (traj Trajectory) Mirror() Trajectory {
	n := len(traj)
	if n == 0 {
		return nil
	}
	end := traj[n-1]
	out := make(Trajectory, n)
	for k := range out {
		src := traj[n-1-k]
		out[k] = Waypoint{
			T:     traj[k].T,
			X:     src.X - end.X,
			Y:     src.Y - end.Y,
			Theta: src.Theta - end.Theta,
			Shape: src.Shape,
		}
	}
	return out
}

// clone returns an independent copy of the trajectory.
func (traj Trajectory) clone() Trajectory {
	return append(Trajectory(nil), traj...)
}

// channels decomposes the trajectory into its six per-coordinate sample
// channels, in (t, x, y, theta, alphaI, alphaJ) order.
func (traj Trajectory) channels() [6][]float64 {
	var ch [6][]float64
	for i := range ch {
		ch[i] = make([]float64, len(traj))
	}
	for k, w := range traj {
		ch[0][k] = w.T
		ch[1][k] = w.X
		ch[2][k] = w.Y
		ch[3][k] = w.Theta
		ch[4][k] = w.Shape.X
		ch[5][k] = w.Shape.Y
	}
	return ch
}

func fromChannels(ch [6][]float64) Trajectory {
	out := make(Trajectory, len(ch[0]))
	for k := range out {
		out[k] = Waypoint{
			T:     ch[0][k],
			X:     ch[1][k],
			Y:     ch[2][k],
			Theta: ch[3][k],
			Shape: r2.Point{X: ch[4][k], Y: ch[5][k]},
		}
	}
	return out
}
