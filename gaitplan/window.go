package gaitplan

// WindowRegime describes where the reference shape point lies on the
// integrated path.
type WindowRegime int

const (
	// RegimeInterior means the reference point lies strictly inside the path.
	RegimeInterior WindowRegime = iota
	// RegimeStartAnchored means the reference point is the start of the path.
	RegimeStartAnchored
	// RegimeEndAnchored means the reference point is the end of the path.
	RegimeEndAnchored
)

func (r WindowRegime) String() string {
	switch r {
	case RegimeInterior:
		return "interior"
	case RegimeStartAnchored:
		return "start-anchored"
	case RegimeEndAnchored:
		return "end-anchored"
	}
	return "unknown"
}

// IntegrationWindow is the pair of integration times around the reference
// shape point. At most one of the two may be zero.
type IntegrationWindow struct {
	Back    float64
	Forward float64
}

// NewIntegrationWindow validates and returns an integration window. Negative
// times and the both-zero window are construction errors.
func NewIntegrationWindow(back, forward float64) (IntegrationWindow, error) {
	if back < 0 || forward < 0 {
		return IntegrationWindow{}, NewNegativeWindowError(back, forward)
	}
	if back == 0 && forward == 0 {
		return IntegrationWindow{}, NewInvalidWindowError()
	}
	return IntegrationWindow{Back: back, Forward: forward}, nil
}

// Regime resolves which window regime this window encodes.
func (w IntegrationWindow) Regime() WindowRegime {
	switch {
	case w.Back == 0:
		return RegimeStartAnchored
	case w.Forward == 0:
		return RegimeEndAnchored
	default:
		return RegimeInterior
	}
}

// Total returns the full forward integration span for this window.
func (w IntegrationWindow) Total() float64 {
	return w.Back + w.Forward
}
