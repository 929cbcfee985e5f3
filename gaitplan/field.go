package gaitplan

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ConstraintField is a gait constraint vector field over the two shape
// coordinates, supplied by an external (typically symbolic) layer as a pair
// of pure callables over the fixed robot geometry. Dphi gives the
// shape-space velocity; Dz gives the induced group-space velocity in the
// body frame. The field is treated as immutable and is never interpreted at
// runtime beyond calling the two functions.
type ConstraintField struct {
	Dphi func(geom RobotGeometry, shape r2.Point) r2.Point
	Dz   func(geom RobotGeometry, shape r2.Point) r3.Vector
}

func (f ConstraintField) validate() error {
	if f.Dphi == nil {
		return errors.New("constraint field is missing its shape velocity function")
	}
	if f.Dz == nil {
		return errors.New("constraint field is missing its group velocity function")
	}
	return nil
}
