package spatialmath

import "github.com/pkg/errors"

// NewInvalidInputError returns an error indicating that an input to a
// spatial operation was malformed.
func NewInvalidInputError(reason string) error {
	return errors.Errorf("invalid input: %s", reason)
}
