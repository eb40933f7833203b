package scheduling

import (
	"fmt"
	"time"

	"hoofline/models"
)

// SlotRequest carries everything slot generation needs for one provider-day.
type SlotRequest struct {
	Date            time.Time                      // calendar date being generated
	Window          models.ResolvedDayAvailability // resolved via ResolveWindow
	DurationMinutes int                            // fixed step and slot length
	Bookings        []models.Booking               // same-day blocking bookings only
	CustomerLoc     *models.Location               // requesting customer, if known
	Now             time.Time
}

// SlotGenerator walks a resolved window and annotates every candidate slot.
// Output is derived fresh on each call; nothing here is cached or persisted.
type SlotGenerator struct {
	Travel TravelTimeEvaluator
}

// Generate produces the chronologically ascending slot list for one date.
// A closed day yields an empty list, not unavailable placeholders. Each
// candidate is judged in precedence order, stopping at the first match:
// past, booked, travel-time, available.
func (g SlotGenerator) Generate(req SlotRequest) ([]models.Slot, error) {
	if req.DurationMinutes <= 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid service duration %d", req.DurationMinutes)}
	}

	slots := []models.Slot{}
	if req.Window.IsClosed || req.Window.OpeningTime == nil || req.Window.ClosingTime == nil {
		return slots, nil
	}

	opening, err := ToMinutes(*req.Window.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("resolved opening time: %w", err)
	}
	closing, err := ToMinutes(*req.Window.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("resolved closing time: %w", err)
	}

	booked := make([]BookedInterval, 0, len(req.Bookings))
	for _, b := range req.Bookings {
		bs, err := ToMinutes(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s start time: %w", b.ID, err)
		}
		be, err := ToMinutes(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s end time: %w", b.ID, err)
		}
		booked = append(booked, BookedInterval{Start: bs, End: be, Location: b.Location})
	}

	slotDate := req.Date.Format(DateLayout)
	today := req.Now.Format(DateLayout)
	nowMinute := req.Now.Hour()*60 + req.Now.Minute()

	// A slot ending exactly at closing time is still bookable; no partial
	// trailing slot is ever emitted.
	for start := opening; start+req.DurationMinutes <= closing; start += req.DurationMinutes {
		end := start + req.DurationMinutes
		slot := models.Slot{
			StartTime:   ToTimeString(start),
			EndTime:     ToTimeString(end),
			IsAvailable: true,
		}

		switch {
		case slotDate < today, slotDate == today && start <= nowMinute:
			slot.IsAvailable = false
			slot.UnavailableReason = models.SlotReasonPast

		case overlapsAny(start, end, booked):
			slot.IsAvailable = false
			slot.UnavailableReason = models.SlotReasonBooked

		case g.Travel.Evaluate(start, end, req.CustomerLoc, booked) == TravelViolated:
			slot.IsAvailable = false
			slot.UnavailableReason = models.SlotReasonTravelTime
		}

		slots = append(slots, slot)
	}

	return slots, nil
}

func overlapsAny(start, end int, booked []BookedInterval) bool {
	for _, b := range booked {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
