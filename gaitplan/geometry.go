package gaitplan

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// RobotGeometry holds the fixed kinematic parameters of the robot: link
// lengths of the two coupled legs and their ankle offsets. It is a value
// object; gait paths hold it by composition and never mutate it.
type RobotGeometry struct {
	ForeLink  float64
	HindLink  float64
	ForeAnkle float64
	HindAnkle float64
}

// NewRobotGeometry validates and returns a robot geometry. Link lengths
// must be strictly positive; ankle offsets may take any value.
func NewRobotGeometry(foreLink, hindLink, foreAnkle, hindAnkle float64) (RobotGeometry, error) {
	var err error
	if foreLink <= 0 {
		err = multierr.Append(err, errors.Errorf("fore link length must be positive, got %v", foreLink))
	}
	if hindLink <= 0 {
		err = multierr.Append(err, errors.Errorf("hind link length must be positive, got %v", hindLink))
	}
	if err != nil {
		return RobotGeometry{}, err
	}
	return RobotGeometry{
		ForeLink:  foreLink,
		HindLink:  hindLink,
		ForeAnkle: foreAnkle,
		HindAnkle: hindAnkle,
	}, nil
}
