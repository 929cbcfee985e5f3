package odometry

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"
)

// Sinusoid is a closed-form parameterization of a leg's shape coordinate:
// position(t) = Scale*Amplitude*sin(Frequency*t + Phase) + Offset, with
// Frequency in radians per second.
type Sinusoid struct {
	Scale     float64
	Amplitude float64
	Frequency float64
	Phase     float64
	Offset    float64
}

// NewSinusoid builds a sinusoid from a raw 5-parameter vector in
// (scale, amplitude, frequency, phase, offset) order. Any other arity is a
// format error.
func NewSinusoid(params []float64) (Sinusoid, error) {
	if len(params) != 5 {
		return Sinusoid{}, NewSinusoidArityError(len(params))
	}
	return Sinusoid{
		Scale:     params[0],
		Amplitude: params[1],
		Frequency: params[2],
		Phase:     params[3],
		Offset:    params[4],
	}, nil
}

func (s Sinusoid) position(t float64) float64 {
	return s.Scale*s.Amplitude*math.Sin(s.Frequency*t+s.Phase) + s.Offset
}

func (s Sinusoid) rate(t float64) float64 {
	return s.Scale * s.Amplitude * s.Frequency * math.Cos(s.Frequency*t+s.Phase)
}

// ShapeSeries is a literal shape trajectory sampled on the estimator's
// query times: position and time-derivative, both of the same length as the
// time vector.
type ShapeSeries struct {
	Position []float64
	Rate     []float64
}

// LegInput supplies one leg's shape trajectory, either literal or
// sinusoidal. Exactly one of Series and Sinusoid must be set.
type LegInput struct {
	Series   *ShapeSeries
	Sinusoid *Sinusoid
}

// legShape evaluates one leg's shape position and rate at arbitrary query
// times by natural cubic splines through the (possibly generated) series.
type legShape struct {
	position interp.NaturalCubic
	rate     interp.NaturalCubic
	lo, hi   float64
}

func (in LegInput) resolve(leg string, times []float64) (*legShape, error) {
	pos := make([]float64, len(times))
	rate := make([]float64, len(times))
	switch {
	case in.Series != nil && in.Sinusoid != nil:
		return nil, errors.Errorf("%s leg: supply either a literal series or a sinusoid, not both", leg)
	case in.Series != nil:
		if len(in.Series.Position) != len(times) {
			return nil, NewLegLengthMismatchError(leg, len(in.Series.Position), len(times))
		}
		if len(in.Series.Rate) != len(times) {
			return nil, NewLegLengthMismatchError(leg, len(in.Series.Rate), len(times))
		}
		copy(pos, in.Series.Position)
		copy(rate, in.Series.Rate)
	case in.Sinusoid != nil:
		// generate the time series before integration
		for i, t := range times {
			pos[i] = in.Sinusoid.position(t)
			rate[i] = in.Sinusoid.rate(t)
		}
	default:
		return nil, errors.Errorf("%s leg: no shape input supplied", leg)
	}

	ls := &legShape{lo: times[0], hi: times[len(times)-1]}
	if err := ls.position.Fit(times, pos); err != nil {
		return nil, errors.Wrapf(err, "%s leg position spline", leg)
	}
	if err := ls.rate.Fit(times, rate); err != nil {
		return nil, errors.Wrapf(err, "%s leg rate spline", leg)
	}
	return ls, nil
}

func (ls *legShape) at(t float64) (float64, float64) {
	// clamp adaptive-solver queries that step just past the data range
	if t < ls.lo {
		t = ls.lo
	}
	if t > ls.hi {
		t = ls.hi
	}
	return ls.position.Predict(t), ls.rate.Predict(t)
}
