package gaitplan

import "github.com/pkg/errors"

// NewInvalidWindowError returns an error indicating that both integration
// times of a window are zero.
func NewInvalidWindowError() error {
	return errors.New("integration window is zero in both directions")
}

// NewNegativeWindowError returns an error indicating a negative integration
// time.
func NewNegativeWindowError(back, forward float64) error {
	return errors.Errorf("integration times must be non-negative, got back=%v forward=%v", back, forward)
}

// NewIntegrationFailedError tags an underlying solver failure with the leg
// and regime that was being computed.
func NewIntegrationFailedError(leg string, regime WindowRegime, err error) error {
	return errors.Wrapf(err, "%s leg integration failed (%s regime)", leg, regime)
}

// NewInvalidFractionError returns an error for a path fraction outside (0, 1].
func NewInvalidFractionError(fraction float64) error {
	return errors.Errorf("path fraction must be in (0, 1], got %v", fraction)
}

// NewInvalidDutyCycleError returns an error for a duty cycle outside [0, 1].
func NewInvalidDutyCycleError(dc float64) error {
	return errors.Errorf("duty cycle must be in [0, 1], got %v", dc)
}

// NewTrajectoryTooShortError returns an error for a trajectory or
// discretization count with fewer than two samples.
func NewTrajectoryTooShortError(n int) error {
	return errors.Errorf("need at least 2 trajectory samples, got %d", n)
}

// NewPercentageNotComputedError returns an error for a family lookup of a
// percentage that was never populated.
func NewPercentageNotComputedError(pct int) error {
	return errors.Errorf("no trajectory computed for %d%%", pct)
}
