package route

import (
	"testing"
	"time"

	"hoofline/models"
	"hoofline/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingStop(order int) models.RouteStop {
	return models.RouteStop{
		ID:        "stop-" + string(rune('0'+order)),
		StopOrder: order,
		Status:    models.StopPending,
	}
}

func TestApplyTransitionHappyPath(t *testing.T) {
	now := time.Date(2026, 9, 10, 9, 5, 0, 0, time.UTC)
	stop := pendingStop(1)

	require.NoError(t, ApplyTransition(&stop, models.StopInProgress, "", now))
	assert.Equal(t, models.StopInProgress, stop.Status)
	require.NotNil(t, stop.ActualArrival)
	assert.Equal(t, now, *stop.ActualArrival)
	assert.Nil(t, stop.ActualDeparture)

	later := now.Add(40 * time.Minute)
	require.NoError(t, ApplyTransition(&stop, models.StopCompleted, "", later))
	assert.Equal(t, models.StopCompleted, stop.Status)
	require.NotNil(t, stop.ActualDeparture)
	assert.Equal(t, later, *stop.ActualDeparture)
	// The arrival recorded earlier is not overwritten.
	assert.Equal(t, now, *stop.ActualArrival)
}

func TestApplyTransitionToProblemRecordsNote(t *testing.T) {
	now := time.Now()
	stop := pendingStop(1)
	require.NoError(t, ApplyTransition(&stop, models.StopInProgress, "", now))

	require.NoError(t, ApplyTransition(&stop, models.StopProblem, "horse would not load", now))
	assert.Equal(t, models.StopProblem, stop.Status)
	assert.Equal(t, "horse would not load", stop.ProblemNote)
}

func TestApplyTransitionEscapeFromPending(t *testing.T) {
	// A stop can be flagged as a problem without ever being started.
	stop := pendingStop(1)
	require.NoError(t, ApplyTransition(&stop, models.StopProblem, "customer not home", time.Now()))
	assert.Equal(t, models.StopProblem, stop.Status)
	assert.Nil(t, stop.ActualArrival)
}

func TestApplyTransitionRejectsUnknownStatus(t *testing.T) {
	stop := pendingStop(1)
	err := ApplyTransition(&stop, "paused", "", time.Now())
	var verr *scheduling.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, models.StopPending, stop.Status)
}

func TestApplyTransitionRejectsNoOp(t *testing.T) {
	stop := pendingStop(1)
	err := ApplyTransition(&stop, models.StopPending, "", time.Now())
	var verr *scheduling.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCurrentStopPrefersInProgress(t *testing.T) {
	stops := []models.RouteStop{
		{ID: "a", StopOrder: 1, Status: models.StopCompleted},
		{ID: "b", StopOrder: 2, Status: models.StopPending},
		{ID: "c", StopOrder: 3, Status: models.StopInProgress},
	}
	cur := CurrentStop(stops)
	require.NotNil(t, cur)
	assert.Equal(t, "c", cur.ID)
}

func TestCurrentStopFallsBackToFirstPending(t *testing.T) {
	stops := []models.RouteStop{
		{ID: "a", StopOrder: 1, Status: models.StopCompleted},
		{ID: "b", StopOrder: 2, Status: models.StopProblem},
		{ID: "c", StopOrder: 3, Status: models.StopPending},
		{ID: "d", StopOrder: 4, Status: models.StopPending},
	}
	cur := CurrentStop(stops)
	require.NotNil(t, cur)
	assert.Equal(t, "c", cur.ID)
}

func TestCurrentStopNilWhenAllSettled(t *testing.T) {
	stops := []models.RouteStop{
		{ID: "a", StopOrder: 1, Status: models.StopCompleted},
		{ID: "b", StopOrder: 2, Status: models.StopProblem},
	}
	assert.Nil(t, CurrentStop(stops))
}

func TestCurrentStopOrderIndependentOfSliceOrder(t *testing.T) {
	stops := []models.RouteStop{
		{ID: "b", StopOrder: 2, Status: models.StopPending},
		{ID: "a", StopOrder: 1, Status: models.StopPending},
	}
	cur := CurrentStop(stops)
	require.NotNil(t, cur)
	assert.Equal(t, "a", cur.ID)
}

func TestProgressCountsProblemAsSettled(t *testing.T) {
	stops := []models.RouteStop{
		{StopOrder: 1, Status: models.StopCompleted},
		{StopOrder: 2, Status: models.StopProblem},
		{StopOrder: 3, Status: models.StopInProgress},
		{StopOrder: 4, Status: models.StopPending},
	}
	p := Progress(stops)
	assert.Equal(t, 4, p.TotalStops)
	assert.Equal(t, 2, p.SettledStops)
}

func TestValidateStopSequence(t *testing.T) {
	good := []models.RouteStop{pendingStop(2), pendingStop(1), pendingStop(3)}
	assert.NoError(t, ValidateStopSequence(good))

	dup := []models.RouteStop{pendingStop(1), pendingStop(1)}
	assert.Error(t, ValidateStopSequence(dup))

	gap := []models.RouteStop{pendingStop(1), pendingStop(3)}
	assert.Error(t, ValidateStopSequence(gap))

	zero := []models.RouteStop{pendingStop(0)}
	assert.Error(t, ValidateStopSequence(zero))
}
