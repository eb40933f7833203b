package scheduling

import (
	"time"

	"hoofline/models"
)

// DateLayout is the calendar-date wire format used across the system.
const DateLayout = "2006-01-02"

// MondayIndexedWeekday maps a time.Weekday onto the 0=Monday convention used
// by WeeklyAvailability records.
func MondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ResolveWindow composes a weekly schedule record with a date-specific
// exception into the effective opening window. The exception always wins:
//
//  1. exception closed       -> closed, carrying the exception's reason
//  2. exception open         -> open with the exception's hours
//  3. no exception           -> the weekly record; missing, inactive or
//     closed records mean a closed day with no reason
//
// Either argument may be nil when no record exists.
func ResolveWindow(weekly *models.WeeklyAvailability, exc *models.AvailabilityException) models.ResolvedDayAvailability {
	if exc != nil {
		if exc.IsClosed {
			var reason *string
			if exc.Reason != "" {
				r := exc.Reason
				reason = &r
			}
			return models.ResolvedDayAvailability{IsClosed: true, ClosedReason: reason}
		}
		open, close := exc.StartTime, exc.EndTime
		return models.ResolvedDayAvailability{OpeningTime: &open, ClosingTime: &close}
	}

	if weekly == nil || !weekly.IsActive || weekly.IsClosed {
		return models.ResolvedDayAvailability{IsClosed: true}
	}
	open, close := weekly.StartTime, weekly.EndTime
	return models.ResolvedDayAvailability{OpeningTime: &open, ClosingTime: &close}
}
