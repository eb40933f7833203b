package scheduling

import (
	"testing"

	"hoofline/models"

	"github.com/stretchr/testify/assert"
)

// fixedEstimator returns the same buffer for every pair of locations.
type fixedEstimator struct{ minutes int }

func (f fixedEstimator) EstimateTravelMinutes(from, to models.Location) int {
	return f.minutes
}

func loc(lat, lng float64) *models.Location {
	return &models.Location{Latitude: lat, Longitude: lng}
}

func TestEvaluateUnconstrainedWithoutCandidateLocation(t *testing.T) {
	e := TravelTimeEvaluator{Estimator: fixedEstimator{minutes: 30}}
	existing := []BookedInterval{{Start: 540, End: 570, Location: loc(51.5, -0.1)}}

	assert.Equal(t, TravelUnconstrained, e.Evaluate(600, 630, nil, existing))
}

func TestEvaluateUnconstrainedWithoutEstimator(t *testing.T) {
	e := TravelTimeEvaluator{}
	existing := []BookedInterval{{Start: 540, End: 570, Location: loc(51.5, -0.1)}}

	assert.Equal(t, TravelUnconstrained, e.Evaluate(600, 630, loc(51.6, -0.2), existing))
}

func TestEvaluateUnconstrainedWhenNoBookingHasLocation(t *testing.T) {
	e := TravelTimeEvaluator{Estimator: fixedEstimator{minutes: 30}}
	existing := []BookedInterval{
		{Start: 540, End: 570},
		{Start: 600, End: 630},
	}

	assert.Equal(t, TravelUnconstrained, e.Evaluate(660, 690, loc(51.6, -0.2), existing))
}

func TestEvaluateViolatedWhenGapTooSmall(t *testing.T) {
	e := TravelTimeEvaluator{Estimator: fixedEstimator{minutes: 45}}
	// Booking ends 10:00, candidate starts 10:30: a 30 minute gap.
	existing := []BookedInterval{{Start: 540, End: 600, Location: loc(51.5, -0.1)}}

	assert.Equal(t, TravelViolated, e.Evaluate(630, 660, loc(51.6, -0.2), existing))
}

func TestEvaluateSatisfiedWhenGapCoversTravel(t *testing.T) {
	e := TravelTimeEvaluator{Estimator: fixedEstimator{minutes: 30}}
	existing := []BookedInterval{{Start: 540, End: 600, Location: loc(51.5, -0.1)}}

	// Candidate starts exactly one buffer after the booking ends.
	assert.Equal(t, TravelSatisfied, e.Evaluate(630, 660, loc(51.6, -0.2), existing))
}

func TestEvaluateChecksBookingsAfterCandidate(t *testing.T) {
	e := TravelTimeEvaluator{Estimator: fixedEstimator{minutes: 30}}
	// Candidate ends 10:00, booking starts 10:15: a 15 minute gap.
	existing := []BookedInterval{{Start: 615, End: 645, Location: loc(51.5, -0.1)}}

	assert.Equal(t, TravelViolated, e.Evaluate(570, 600, loc(51.6, -0.2), existing))
}

func TestEvaluateOverlappingIntervalLeavesNoGap(t *testing.T) {
	e := TravelTimeEvaluator{Estimator: fixedEstimator{minutes: 1}}
	existing := []BookedInterval{{Start: 540, End: 600, Location: loc(51.5, -0.1)}}

	assert.Equal(t, TravelViolated, e.Evaluate(570, 630, loc(51.6, -0.2), existing))
}

func TestEvaluateSkipsUnlocatedBookings(t *testing.T) {
	e := TravelTimeEvaluator{Estimator: fixedEstimator{minutes: 30}}
	existing := []BookedInterval{
		{Start: 585, End: 615}, // adjacent but unlocated: cannot constrain
		{Start: 480, End: 510, Location: loc(51.5, -0.1)},
	}

	assert.Equal(t, TravelSatisfied, e.Evaluate(615, 645, loc(51.6, -0.2), existing))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "unconstrained", TravelUnconstrained.String())
	assert.Equal(t, "satisfied", TravelSatisfied.String())
	assert.Equal(t, "violated", TravelViolated.String())
}
