package scheduling

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "hoofline/database/repository/availability"
	bookingRepo "hoofline/database/repository/booking"
	providerRepo "hoofline/database/repository/provider"
	"hoofline/models"
	"hoofline/utils"

	"go.uber.org/zap"
)

// SchedulingEngine computes resolved availability and bookable slots for one
// provider-day. Everything is recomputed from fresh repository reads on every
// call; the engine holds no mutable state.
type SchedulingEngine interface {
	ResolveDay(ctx context.Context, providerID, date string) (models.ResolvedDayAvailability, error)
	DaySchedule(ctx context.Context, providerID, date string, durationMin int, customerLoc *models.Location) (models.DayScheduleResponse, error)
}

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	Availability availabilityRepo.AvailabilityRepository
	Bookings     bookingRepo.BookingRepository
	Providers    providerRepo.ProviderRepository
	Generator    SlotGenerator
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

// ResolveDay returns the effective opening window for the date after
// exception precedence.
func (se *DefaultSchedulingEngine) ResolveDay(ctx context.Context, providerID, date string) (models.ResolvedDayAvailability, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return models.ResolvedDayAvailability{}, &ValidationError{Message: fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", date)}
	}

	exc, err := se.Availability.GetException(ctx, providerID, date)
	if err != nil {
		return models.ResolvedDayAvailability{}, fmt.Errorf("fetch availability exception: %w", err)
	}

	var weekly *models.WeeklyAvailability
	if exc == nil {
		weekly, err = se.Availability.GetActiveWeekly(ctx, providerID, MondayIndexedWeekday(day))
		if err != nil {
			return models.ResolvedDayAvailability{}, fmt.Errorf("fetch weekly availability: %w", err)
		}
	}

	return ResolveWindow(weekly, exc), nil
}

// DaySchedule resolves the window, loads the blocking bookings and generates
// the annotated slot list.
func (se *DefaultSchedulingEngine) DaySchedule(ctx context.Context, providerID, date string, durationMin int, customerLoc *models.Location) (models.DayScheduleResponse, error) {
	logger := utils.GetLogger()

	provider, err := se.Providers.GetByID(ctx, providerID)
	if err != nil {
		return models.DayScheduleResponse{}, fmt.Errorf("fetch provider: %w", err)
	}
	if provider == nil {
		return models.DayScheduleResponse{}, &NotFoundError{Message: fmt.Sprintf("provider %s not found", providerID)}
	}

	if durationMin == 0 {
		durationMin = provider.ServiceDurationMin
	}
	if durationMin == 0 {
		durationMin = models.DefaultServiceDurationMin
	}

	window, err := se.ResolveDay(ctx, providerID, date)
	if err != nil {
		return models.DayScheduleResponse{}, err
	}

	bookings, err := se.Bookings.GetBlocking(ctx, providerID, date)
	if err != nil {
		return models.DayScheduleResponse{}, fmt.Errorf("fetch blocking bookings: %w", err)
	}

	day, _ := time.Parse(DateLayout, date)
	slots, err := se.Generator.Generate(SlotRequest{
		Date:            day,
		Window:          window,
		DurationMinutes: durationMin,
		Bookings:        bookings,
		CustomerLoc:     customerLoc,
		Now:             se.now(),
	})
	if err != nil {
		return models.DayScheduleResponse{}, err
	}

	logger.Debug("day schedule computed",
		zap.String("providerID", providerID),
		zap.String("date", date),
		zap.Int("blockingBookings", len(bookings)),
		zap.Int("slots", len(slots)))

	return models.DayScheduleResponse{
		ProviderID:   providerID,
		Date:         date,
		Availability: window,
		Slots:        slots,
	}, nil
}
