package route

import (
	"fmt"
	"time"

	"hoofline/models"
	"hoofline/services/scheduling"
)

// knownStopStatuses are the only statuses a transition may target.
var knownStopStatuses = map[string]bool{
	models.StopPending:    true,
	models.StopInProgress: true,
	models.StopCompleted:  true,
	models.StopProblem:    true,
}

// ApplyTransition mutates the stop toward the target status, recording the
// actual arrival on entry to in_progress and the actual departure on entry to
// completed. Every transition is an explicit provider action; nothing here
// fires on a timer. Transitions out of problem are not rejected, but no
// recovery path is defined either.
func ApplyTransition(stop *models.RouteStop, target, problemNote string, now time.Time) error {
	if !knownStopStatuses[target] {
		return &scheduling.ValidationError{Message: fmt.Sprintf("unknown stop status %q", target)}
	}
	if target == stop.Status {
		return &scheduling.ValidationError{Message: fmt.Sprintf("stop already %s", target)}
	}

	switch target {
	case models.StopInProgress:
		if stop.ActualArrival == nil {
			t := now
			stop.ActualArrival = &t
		}
	case models.StopCompleted:
		if stop.ActualDeparture == nil {
			t := now
			stop.ActualDeparture = &t
		}
	case models.StopProblem:
		stop.ProblemNote = problemNote
	}

	stop.Status = target
	return nil
}

// CurrentStop derives the active stop: the first in_progress stop by
// stopOrder, else the first pending one. The pointer aliases the slice; the
// cursor is computed on demand and never persisted, so it cannot drift from
// the stop statuses.
func CurrentStop(stops []models.RouteStop) *models.RouteStop {
	var firstPending *models.RouteStop
	var firstInProgress *models.RouteStop

	for i := range stops {
		s := &stops[i]
		switch s.Status {
		case models.StopInProgress:
			if firstInProgress == nil || s.StopOrder < firstInProgress.StopOrder {
				firstInProgress = s
			}
		case models.StopPending:
			if firstPending == nil || s.StopOrder < firstPending.StopOrder {
				firstPending = s
			}
		}
	}

	if firstInProgress != nil {
		return firstInProgress
	}
	return firstPending
}

// Progress counts settled stops; completed and problem both count, since
// neither leaves work outstanding on the route.
func Progress(stops []models.RouteStop) models.RouteProgress {
	settled := 0
	for _, s := range stops {
		if s.Status == models.StopCompleted || s.Status == models.StopProblem {
			settled++
		}
	}
	return models.RouteProgress{TotalStops: len(stops), SettledStops: settled}
}

// ValidateStopSequence enforces that stopOrder values are unique and
// contiguous starting at 1.
func ValidateStopSequence(stops []models.RouteStop) error {
	seen := make(map[int]bool, len(stops))
	for _, s := range stops {
		if s.StopOrder < 1 || s.StopOrder > len(stops) {
			return &scheduling.ValidationError{Message: fmt.Sprintf("stopOrder %d outside [1, %d]", s.StopOrder, len(stops))}
		}
		if seen[s.StopOrder] {
			return &scheduling.ValidationError{Message: fmt.Sprintf("duplicate stopOrder %d", s.StopOrder)}
		}
		seen[s.StopOrder] = true
	}
	return nil
}
