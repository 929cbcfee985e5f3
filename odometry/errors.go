package odometry

import "github.com/pkg/errors"

// NewLegLengthMismatchError returns an error indicating that a leg's shape
// series does not match the query time vector.
func NewLegLengthMismatchError(leg string, got, want int) error {
	return errors.Errorf("%s leg shape series has %d samples, want %d", leg, got, want)
}

// NewSinusoidArityError returns an error for a sinusoid parameterization of
// the wrong arity.
func NewSinusoidArityError(got int) error {
	return errors.Errorf("sinusoid parameterization needs 5 parameters (scale, amplitude, frequency, phase, offset), got %d", got)
}

// NewMissingThresholdError returns an error for contact thresholding
// requested without a height threshold.
func NewMissingThresholdError(leg string) error {
	return errors.Errorf("%s leg contact requires a height threshold to derive contact from foot height", leg)
}

// NewContactInputError returns an error for a malformed contact input.
func NewContactInputError(leg, reason string) error {
	return errors.Errorf("%s leg contact input: %s", leg, reason)
}

// NewMissingJacobianError returns an error for a contact state with no
// registered kinematic Jacobian.
func NewMissingJacobianError(state ContactState) error {
	return errors.Errorf("no kinematic jacobian registered for contact state %q", state)
}
