package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hoofline/cron"
	bookingRepo "hoofline/database/repository/booking"
	customerRepo "hoofline/database/repository/customer"
	providerRepo "hoofline/database/repository/provider"
	"hoofline/models"
	"hoofline/services/notification"
	"hoofline/services/scheduling"
	"hoofline/utils"

	"go.uber.org/zap"
)

// BookingService runs the customer booking flow and booking lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error)
	UpdateStatus(ctx context.Context, actor Actor, bookingID, status string) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListForProvider(ctx context.Context, providerID string) ([]models.Booking, error)
}

// Actor is the authenticated caller of a lifecycle transition, taken from the
// session, never from the request body.
type Actor struct {
	Role string
	ID   string
}

const (
	ActorCustomer = "customer"
	ActorProvider = "provider"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Engine       scheduling.SchedulingEngine
	Bookings     bookingRepo.BookingRepository
	Customers    customerRepo.CustomerRepository
	Providers    providerRepo.ProviderRepository
	Notification notification.NotificationService
	Reminders    *cron.ReminderScheduler
}

// Lifecycle transitions a booking may take. Everything else is rejected;
// records are never deleted.
var allowedStatusTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled, models.BookingNoShow},
}

// CreateBooking validates the requested slot against a freshly generated
// schedule and reserves it. The slot check is advisory; the repository's
// transactional insert is what actually excludes a concurrent double-booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("fetch customer: %w", err)
	}
	if customer == nil {
		return nil, &scheduling.NotFoundError{Message: fmt.Sprintf("customer %s not found", customerID)}
	}

	provider, err := s.Providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("fetch provider: %w", err)
	}
	if provider == nil {
		return nil, &scheduling.NotFoundError{Message: fmt.Sprintf("provider %s not found", req.ProviderID)}
	}

	startMin, err := scheduling.ToMinutes(req.StartTime)
	if err != nil {
		return nil, &scheduling.ValidationError{Message: err.Error()}
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = provider.ServiceDurationMin
	}
	if duration == 0 {
		duration = models.DefaultServiceDurationMin
	}
	if duration < 0 || duration > 8*60 {
		return nil, &scheduling.ValidationError{Message: fmt.Sprintf("invalid duration %d", duration)}
	}

	loc, err := resolveVisitLocation(req, customer, provider)
	if err != nil {
		return nil, &scheduling.ValidationError{Message: err.Error()}
	}

	schedule, err := s.Engine.DaySchedule(ctx, req.ProviderID, req.BookingDate, duration, loc)
	if err != nil {
		return nil, err
	}

	var matched *models.Slot
	for i := range schedule.Slots {
		if schedule.Slots[i].StartTime == req.StartTime {
			matched = &schedule.Slots[i]
			break
		}
	}
	if matched == nil {
		return nil, &SlotError{Reason: "outside-hours", Message: fmt.Sprintf("%s %s is not a bookable slot", req.BookingDate, req.StartTime)}
	}
	if !matched.IsAvailable {
		return nil, &SlotError{Reason: matched.UnavailableReason, Message: fmt.Sprintf("slot %s is not available", req.StartTime)}
	}

	b := models.Booking{
		ProviderID:  req.ProviderID,
		CustomerID:  customerID,
		ServiceType: provider.ServiceType,
		BookingDate: req.BookingDate,
		StartTime:   req.StartTime,
		EndTime:     scheduling.ToTimeString(startMin + duration),
		Status:      models.BookingPending,
		Location:    loc,
		Notes:       req.Notes,
	}

	if err := s.Bookings.ReserveSlot(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &SlotError{Reason: models.SlotReasonBooked, Message: "slot was taken by another booking"}
		}
		return nil, fmt.Errorf("reserve slot: %w", err)
	}

	created, err := s.latestFor(ctx, customerID, req)
	if err != nil {
		return nil, err
	}

	if s.Notification != nil {
		if err := s.Notification.SendProviderPush(ctx, req.ProviderID,
			"New booking request",
			fmt.Sprintf("%s requested %s on %s at %s.", customer.Name, provider.ServiceType, req.BookingDate, req.StartTime),
			map[string]string{"bookingId": created.ID}); err != nil {
			logger.Warn("booking push failed", zap.String("bookingID", created.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingID", created.ID),
		zap.String("providerID", req.ProviderID),
		zap.String("date", req.BookingDate),
		zap.String("start", req.StartTime))

	return created, nil
}

// UpdateStatus applies a lifecycle transition on behalf of the actor, who
// must be a party to the booking. Customers may only cancel; every other
// transition belongs to the provider. Confirming schedules the reminder push
// for the day before the visit.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, actor Actor, bookingID, status string) (*models.Booking, error) {
	logger := utils.GetLogger()

	current, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, &scheduling.NotFoundError{Message: fmt.Sprintf("booking %s not found", bookingID)}
	}

	if err := authorizeTransition(actor, current, status); err != nil {
		return nil, err
	}

	if !transitionAllowed(current.Status, status) {
		return nil, &scheduling.ValidationError{Message: fmt.Sprintf("cannot move booking from %s to %s", current.Status, status)}
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if status == models.BookingConfirmed {
		s.onConfirmed(ctx, updated, logger)
	}
	if status == models.BookingCancelled && s.Notification != nil {
		if err := s.Notification.SendCustomerPush(ctx, updated.CustomerID,
			"Booking cancelled",
			fmt.Sprintf("Your booking on %s at %s was cancelled.", updated.BookingDate, updated.StartTime),
			map[string]string{"bookingId": updated.ID}); err != nil {
			logger.Warn("cancellation push failed", zap.String("bookingID", updated.ID), zap.Error(err))
		}
	}

	return updated, nil
}

func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return s.Bookings.ListByCustomer(ctx, customerID)
}

func (s *DefaultBookingService) ListForProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.Bookings.ListByProvider(ctx, providerID)
}

func (s *DefaultBookingService) onConfirmed(ctx context.Context, b *models.Booking, logger *zap.Logger) {
	if s.Notification != nil {
		if err := s.Notification.SendCustomerPush(ctx, b.CustomerID,
			"Booking confirmed",
			fmt.Sprintf("Your booking on %s at %s is confirmed.", b.BookingDate, b.StartTime),
			map[string]string{"bookingId": b.ID}); err != nil {
			logger.Warn("confirmation push failed", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	if s.Reminders == nil {
		return
	}
	start, err := time.ParseInLocation(scheduling.DateLayout+" 15:04", b.BookingDate+" "+b.StartTime, time.Local)
	if err != nil {
		logger.Warn("reminder not scheduled, bad booking time", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	payload := cron.BookingReminderPayload{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		Date:       b.BookingDate,
		StartTime:  b.StartTime,
	}
	if err := s.Reminders.ScheduleBookingReminder(payload, start.Add(-24*time.Hour)); err != nil {
		logger.Warn("reminder enqueue failed", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// latestFor finds the booking just reserved; ReserveSlot runs inside a
// transaction and does not return the inserted document.
func (s *DefaultBookingService) latestFor(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error) {
	all, err := s.Bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for i := range all {
		b := &all[i]
		if b.ProviderID == req.ProviderID && b.BookingDate == req.BookingDate && b.StartTime == req.StartTime && b.IsBlocking() {
			return b, nil
		}
	}
	return nil, fmt.Errorf("reserved booking not found")
}

func resolveVisitLocation(req models.CreateBookingRequest, customer *models.Customer, provider *models.Provider) (*models.Location, error) {
	if req.Latitude != nil && req.Longitude != nil {
		loc, err := models.NewLocation(*req.Latitude, *req.Longitude)
		if err != nil {
			return nil, err
		}
		return &loc, nil
	}
	if !provider.Mobile {
		// Stationary providers see customers at their base; no travel
		// constraint applies between customer yards.
		return nil, nil
	}
	return customer.YardLocation, nil
}

func authorizeTransition(actor Actor, b *models.Booking, target string) error {
	switch actor.Role {
	case ActorCustomer:
		if b.CustomerID != actor.ID {
			return &scheduling.ForbiddenError{Message: fmt.Sprintf("booking %s belongs to another customer", b.ID)}
		}
		if target != models.BookingCancelled {
			return &scheduling.ForbiddenError{Message: "customers may only cancel their bookings"}
		}
	case ActorProvider:
		if b.ProviderID != actor.ID {
			return &scheduling.ForbiddenError{Message: fmt.Sprintf("booking %s belongs to another provider", b.ID)}
		}
	default:
		return &scheduling.ForbiddenError{Message: fmt.Sprintf("unknown caller role %q", actor.Role)}
	}
	return nil
}

func transitionAllowed(from, to string) bool {
	for _, t := range allowedStatusTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
