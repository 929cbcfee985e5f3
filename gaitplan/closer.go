package gaitplan

import "math"

// Close appends a deadband return segment to an open trajectory, producing
// a periodic closed trajectory. The deadband holds the group displacement at
// its final value while the shape coordinates move linearly back to their
// initial value through the nullspace of the active contact constraint; time
// continues past the end of the open trajectory at its average sample
// spacing. The segment has round(dutyCycle*N) samples; its first sample is
// one spacing past the open trajectory's end (the coinciding start point is
// excluded) and its last sample lands exactly on the initial shape.
//
// A duty cycle of zero, or one small enough that the rounded sample count is
// zero, returns an unmodified copy of the open trajectory.
func Close(open Trajectory, dutyCycle float64) (Trajectory, error) {
	n := len(open)
	if n < 2 {
		return nil, NewTrajectoryTooShortError(n)
	}
	if dutyCycle < 0 || dutyCycle > 1 {
		return nil, NewInvalidDutyCycleError(dutyCycle)
	}

	deadband := int(math.Round(dutyCycle * float64(n)))
	if deadband == 0 {
		return open.clone(), nil
	}

	last := open[n-1]
	first := open[0]
	dt := last.T / float64(n-1)

	out := make(Trajectory, n, n+deadband)
	copy(out, open)
	for j := 1; j <= deadband; j++ {
		frac := float64(j) / float64(deadband)
		w := Waypoint{
			T:     last.T + float64(j)*dt,
			X:     last.X,
			Y:     last.Y,
			Theta: last.Theta,
		}
		w.Shape.X = last.Shape.X + (first.Shape.X-last.Shape.X)*frac
		w.Shape.Y = last.Shape.Y + (first.Shape.Y-last.Shape.Y)*frac
		out = append(out, w)
	}
	return out, nil
}
