package odometry

import (
	"sort"
)

// ContactState identifies which legs of the coupled pair are in ground
// contact at an instant. Each state selects its own kinematic Jacobian.
type ContactState int

const (
	// ContactNone means neither leg touches the ground.
	ContactNone ContactState = iota
	// ContactFore means only the fore leg touches the ground.
	ContactFore
	// ContactHind means only the hind leg touches the ground.
	ContactHind
	// ContactBoth means both legs touch the ground.
	ContactBoth
)

func (s ContactState) String() string {
	switch s {
	case ContactNone:
		return "none"
	case ContactFore:
		return "fore"
	case ContactHind:
		return "hind"
	case ContactBoth:
		return "both"
	}
	return "unknown"
}

func contactStateOf(fore, hind bool) ContactState {
	switch {
	case fore && hind:
		return ContactBoth
	case fore:
		return ContactFore
	case hind:
		return ContactHind
	default:
		return ContactNone
	}
}

// ContactInput supplies one leg's contact history, either as a literal
// binary indicator or as a foot-height series to be thresholded (in
// contact when the foot is at or below Threshold). Times may be the same as
// or denser than the estimator's query times; if nil, the query times are
// assumed.
type ContactInput struct {
	Times      []float64
	Indicator  []bool
	FootHeight []float64
	Threshold  *float64
}

// contactSeries is a resolved per-leg indicator on its own time base.
type contactSeries struct {
	times  []float64
	active []bool
}

// resolve validates the input and produces the indicator series.
func (c ContactInput) resolve(leg string, queryTimes []float64) (*contactSeries, error) {
	times := c.Times
	if times == nil {
		times = queryTimes
	}
	switch {
	case c.Indicator != nil && c.FootHeight != nil:
		return nil, NewContactInputError(leg, "supply either an indicator or a foot-height series, not both")
	case c.Indicator != nil:
		if len(c.Indicator) != len(times) {
			return nil, NewContactInputError(leg, "indicator length does not match its time base")
		}
		return &contactSeries{times: times, active: c.Indicator}, nil
	case c.FootHeight != nil:
		if c.Threshold == nil {
			return nil, NewMissingThresholdError(leg)
		}
		if len(c.FootHeight) != len(times) {
			return nil, NewContactInputError(leg, "foot-height length does not match its time base")
		}
		active := make([]bool, len(c.FootHeight))
		for i, h := range c.FootHeight {
			active[i] = h <= *c.Threshold
		}
		return &contactSeries{times: times, active: active}, nil
	default:
		return nil, NewContactInputError(leg, "no indicator or foot-height series supplied")
	}
}

// at returns the indicator at the sample nearest to the query time. Query
// times may fall between samples since the solver steps adaptively.
func (c *contactSeries) at(t float64) bool {
	i := sort.SearchFloat64s(c.times, t)
	if i == 0 {
		return c.active[0]
	}
	if i >= len(c.times) {
		return c.active[len(c.active)-1]
	}
	if t-c.times[i-1] <= c.times[i]-t {
		return c.active[i-1]
	}
	return c.active[i]
}
