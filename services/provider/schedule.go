package provider

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "hoofline/database/repository/availability"
	"hoofline/models"
	"hoofline/services/scheduling"
)

// WeeklyEntry is one day's opening hours in a schedule update.
type WeeklyEntry struct {
	DayOfWeek int    `json:"dayOfWeek" binding:"min=0,max=6"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsClosed  bool   `json:"isClosed"`
}

// ExceptionRequest is a date-override create/update payload.
type ExceptionRequest struct {
	Date      string   `json:"date" binding:"required"`
	IsClosed  bool     `json:"isClosed"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Reason    string   `json:"reason"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ProviderSchedule is the full schedule view returned to the dashboard.
type ProviderSchedule struct {
	Weekly     []models.WeeklyAvailability    `json:"weekly"`
	Exceptions []models.AvailabilityException `json:"exceptions"`
}

// ScheduleService manages the weekly schedule and its date exceptions.
type ScheduleService interface {
	SetWeekly(ctx context.Context, providerID string, entries []WeeklyEntry) error
	UpsertException(ctx context.Context, providerID string, req ExceptionRequest) error
	DeleteException(ctx context.Context, providerID, date string) error
	GetSchedule(ctx context.Context, providerID string) (*ProviderSchedule, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Availability availabilityRepo.AvailabilityRepository
}

// SetWeekly validates and upserts the given days. Days not mentioned keep
// their existing records.
func (s *DefaultScheduleService) SetWeekly(ctx context.Context, providerID string, entries []WeeklyEntry) error {
	for _, e := range entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return &scheduling.ValidationError{Message: fmt.Sprintf("dayOfWeek %d outside [0, 6]", e.DayOfWeek)}
		}
		if !e.IsClosed {
			if err := validateWindow(e.StartTime, e.EndTime); err != nil {
				return err
			}
		}
	}

	for _, e := range entries {
		w := models.WeeklyAvailability{
			ProviderID: providerID,
			DayOfWeek:  e.DayOfWeek,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			IsClosed:   e.IsClosed,
			IsActive:   true,
		}
		if err := s.Availability.UpsertWeekly(ctx, w); err != nil {
			return fmt.Errorf("upsert weekly day %d: %w", e.DayOfWeek, err)
		}
	}
	return nil
}

func (s *DefaultScheduleService) UpsertException(ctx context.Context, providerID string, req ExceptionRequest) error {
	if _, err := time.Parse(scheduling.DateLayout, req.Date); err != nil {
		return &scheduling.ValidationError{Message: fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", req.Date)}
	}
	if !req.IsClosed {
		if err := validateWindow(req.StartTime, req.EndTime); err != nil {
			return err
		}
	}

	exc := models.AvailabilityException{
		ProviderID: providerID,
		Date:       req.Date,
		IsClosed:   req.IsClosed,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
	}
	if req.Latitude != nil && req.Longitude != nil {
		loc, err := models.NewLocation(*req.Latitude, *req.Longitude)
		if err != nil {
			return &scheduling.ValidationError{Message: err.Error()}
		}
		exc.Location = &loc
	}

	return s.Availability.UpsertException(ctx, exc)
}

func (s *DefaultScheduleService) DeleteException(ctx context.Context, providerID, date string) error {
	return s.Availability.DeleteException(ctx, providerID, date)
}

// GetSchedule returns the weekly records plus exceptions from today through
// the next 90 days.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, providerID string) (*ProviderSchedule, error) {
	weekly, err := s.Availability.ListWeekly(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("list weekly availability: %w", err)
	}

	today := time.Now()
	from := today.Format(scheduling.DateLayout)
	to := today.AddDate(0, 0, 90).Format(scheduling.DateLayout)
	exceptions, err := s.Availability.ListExceptions(ctx, providerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list exceptions: %w", err)
	}

	return &ProviderSchedule{Weekly: weekly, Exceptions: exceptions}, nil
}

func validateWindow(startTime, endTime string) error {
	start, err := scheduling.ToMinutes(startTime)
	if err != nil {
		return &scheduling.ValidationError{Message: err.Error()}
	}
	end, err := scheduling.ToMinutes(endTime)
	if err != nil {
		return &scheduling.ValidationError{Message: err.Error()}
	}
	if end <= start {
		return &scheduling.ValidationError{Message: fmt.Sprintf("end time %s must be after start time %s", endTime, startTime)}
	}
	return nil
}
