package gaitplan

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"go.viam.com/gaitplan/numeric"
)

// Interpolator derives amplitude-scaled sub-paths from a full reference
// trajectory by window selection and cubic spline reparameterization. Count
// is the discretization count of every produced trajectory.
type Interpolator struct {
	Count int
}

// Scaled returns the sub-trajectory covering the given fraction of the full
// path, resampled onto a uniform time grid of exactly ip.Count samples.
//
// The index window is selected by regime: end-anchored windows take the last
// ceil(fraction*N) samples, start-anchored windows the first, and interior
// windows are centered on the truncating midpoint index (N-1)/2 and span
// trunc(fraction*midpoint) samples to each side. Time and group channels are
// shifted so the window's first sample becomes the new origin; shape
// channels keep their absolute values.
func (ip Interpolator) Scaled(full Trajectory, fraction float64, regime WindowRegime) (Trajectory, error) {
	n := len(full)
	if n < 2 {
		return nil, NewTrajectoryTooShortError(n)
	}
	if ip.Count < 2 {
		return nil, NewTrajectoryTooShortError(ip.Count)
	}
	if fraction <= 0 || fraction > 1 {
		return nil, NewInvalidFractionError(fraction)
	}

	lo, hi := windowBounds(n, fraction, regime)
	ch := full[lo : hi+1].channels()

	// re-zero time and group displacement at the window start
	for i := 0; i < 4; i++ {
		floats.AddConst(-ch[i][0], ch[i])
	}

	grid := floats.Span(make([]float64, ip.Count), 0, ch[0][len(ch[0])-1])
	var out [6][]float64
	out[0] = grid
	for i := 1; i < 6; i++ {
		resampled, err := numeric.ResampleCubic(ch[0], ch[i], grid)
		if err != nil {
			return nil, err
		}
		out[i] = resampled
	}
	return fromChannels(out), nil
}

// windowBounds returns the inclusive index range of the scaled window. The
// interior midpoint and half-span both truncate; windows are nested for
// increasing fractions under all three regimes.
func windowBounds(n int, fraction float64, regime WindowRegime) (int, int) {
	switch regime {
	case RegimeStartAnchored:
		size := windowSize(n, fraction)
		return 0, size - 1
	case RegimeEndAnchored:
		size := windowSize(n, fraction)
		return n - size, n - 1
	default:
		mid := (n - 1) / 2
		half := int(fraction * float64(mid))
		if half < 1 {
			half = 1
		}
		// the minimum half-span can overrun very short trajectories
		lo, hi := mid-half, mid+half
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		return lo, hi
	}
}

func windowSize(n int, fraction float64) int {
	size := int(math.Ceil(fraction * float64(n)))
	if size < 2 {
		size = 2
	}
	if size > n {
		size = n
	}
	return size
}
