package scheduling

import "hoofline/models"

// TravelVerdict is the outcome of a travel-buffer check. The no-data branch
// is its own value so callers can never mistake "nothing to check" for
// "checked and fine".
type TravelVerdict int

const (
	TravelUnconstrained TravelVerdict = iota
	TravelSatisfied
	TravelViolated
)

func (v TravelVerdict) String() string {
	switch v {
	case TravelSatisfied:
		return "satisfied"
	case TravelViolated:
		return "violated"
	default:
		return "unconstrained"
	}
}

// TravelEstimator estimates the minimum gap in minutes a provider needs
// between appointments at two locations. The distance-to-time conversion
// lives behind this interface; the evaluator only owns the comparison.
type TravelEstimator interface {
	EstimateTravelMinutes(from, to models.Location) int
}

// BookedInterval is an existing same-day appointment reduced to what the
// travel check needs.
type BookedInterval struct {
	Start    int // minutes from midnight
	End      int
	Location *models.Location
}

// TravelTimeEvaluator decides whether a candidate slot leaves enough travel
// time around each located same-day appointment.
type TravelTimeEvaluator struct {
	Estimator TravelEstimator
}

// Evaluate checks the candidate interval against every located existing
// appointment. A candidate without a location, or a day with no located
// appointments, is unconstrained: availability wins over strictness when no
// constraint can be computed.
func (e TravelTimeEvaluator) Evaluate(candStart, candEnd int, candLoc *models.Location, existing []BookedInterval) TravelVerdict {
	if candLoc == nil || e.Estimator == nil {
		return TravelUnconstrained
	}

	checked := false
	for _, b := range existing {
		if b.Location == nil {
			continue
		}
		checked = true

		buffer := e.Estimator.EstimateTravelMinutes(*candLoc, *b.Location)

		var gap int
		switch {
		case candStart >= b.End:
			gap = candStart - b.End
		case b.Start >= candEnd:
			gap = b.Start - candEnd
		default:
			// Overlapping intervals leave no room to travel at all.
			gap = 0
		}

		if gap < buffer {
			return TravelViolated
		}
	}

	if !checked {
		return TravelUnconstrained
	}
	return TravelSatisfied
}
