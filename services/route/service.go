package route

import (
	"context"
	"fmt"
	"sort"
	"time"

	bookingRepo "hoofline/database/repository/booking"
	routeRepo "hoofline/database/repository/route"
	"hoofline/models"
	"hoofline/services/notification"
	"hoofline/services/scheduling"
	"hoofline/utils"

	"go.uber.org/zap"
)

// RouteService plans provider routes and drives stop execution.
type RouteService interface {
	PlanRoute(ctx context.Context, providerID, date string, bookingIDs []string) (*models.Route, error)
	GetRoute(ctx context.Context, providerID, routeID string) (*RouteView, error)
	TransitionStop(ctx context.Context, providerID, routeID, stopID string, req models.StopTransitionRequest) (*models.RouteStop, error)
}

// RouteView is a route plus its derived execution state.
type RouteView struct {
	Route       models.Route         `json:"route"`
	CurrentStop *models.RouteStop    `json:"currentStop,omitempty"`
	Progress    models.RouteProgress `json:"progress"`
}

// DefaultRouteService is the production implementation.
type DefaultRouteService struct {
	Repo         routeRepo.RouteRepository
	Bookings     bookingRepo.BookingRepository
	Notification notification.NotificationService
}

// PlanRoute builds the day's stop sequence from confirmed bookings, in the
// order the provider chose them. One route per provider-day.
func (s *DefaultRouteService) PlanRoute(ctx context.Context, providerID, date string, bookingIDs []string) (*models.Route, error) {
	if len(bookingIDs) == 0 {
		return nil, &scheduling.ValidationError{Message: "route needs at least one booking"}
	}

	existing, err := s.Repo.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("check existing route: %w", err)
	}
	if existing != nil {
		return nil, &scheduling.ValidationError{Message: fmt.Sprintf("route for %s already planned", date)}
	}

	stops := make([]models.RouteStop, 0, len(bookingIDs))
	for i, bookingID := range bookingIDs {
		b, err := s.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return nil, &scheduling.NotFoundError{Message: fmt.Sprintf("booking %s not found", bookingID)}
		}
		if b.ProviderID != providerID {
			return nil, &scheduling.ForbiddenError{Message: fmt.Sprintf("booking %s belongs to another provider", bookingID)}
		}
		if b.Status != models.BookingConfirmed {
			return nil, &scheduling.ValidationError{Message: fmt.Sprintf("booking %s is %s, only confirmed bookings can be routed", bookingID, b.Status)}
		}
		if b.BookingDate != date {
			return nil, &scheduling.ValidationError{Message: fmt.Sprintf("booking %s is on %s, not %s", bookingID, b.BookingDate, date)}
		}

		stops = append(stops, models.RouteStop{
			ID: fmt.Sprintf("%s-stop-%d", bookingID, i+1),
			Order: models.RouteOrder{
				BookingID:   b.ID,
				CustomerID:  b.CustomerID,
				ServiceType: b.ServiceType,
				Location:    b.Location,
			},
			StopOrder:            i + 1,
			EstimatedArrival:     b.StartTime,
			EstimatedDurationMin: durationMinutes(b.StartTime, b.EndTime),
			Status:               models.StopPending,
		})
	}

	if err := ValidateStopSequence(stops); err != nil {
		return nil, err
	}

	route := models.Route{ProviderID: providerID, Date: date, Stops: stops}
	if err := s.Repo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("persist route: %w", err)
	}

	created, err := s.Repo.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetRoute returns the route with its derived current stop and progress.
func (s *DefaultRouteService) GetRoute(ctx context.Context, providerID, routeID string) (*RouteView, error) {
	route, err := s.ownedRoute(ctx, providerID, routeID)
	if err != nil {
		return nil, err
	}

	sort.Slice(route.Stops, func(i, j int) bool {
		return route.Stops[i].StopOrder < route.Stops[j].StopOrder
	})

	return &RouteView{
		Route:       *route,
		CurrentStop: CurrentStop(route.Stops),
		Progress:    Progress(route.Stops),
	}, nil
}

// TransitionStop applies an explicit provider action to one stop and
// persists the result.
func (s *DefaultRouteService) TransitionStop(ctx context.Context, providerID, routeID, stopID string, req models.StopTransitionRequest) (*models.RouteStop, error) {
	logger := utils.GetLogger()

	route, err := s.ownedRoute(ctx, providerID, routeID)
	if err != nil {
		return nil, err
	}

	var stop *models.RouteStop
	for i := range route.Stops {
		if route.Stops[i].ID == stopID {
			stop = &route.Stops[i]
			break
		}
	}
	if stop == nil {
		return nil, &scheduling.NotFoundError{Message: fmt.Sprintf("stop %s not found on route %s", stopID, routeID)}
	}

	if err := ApplyTransition(stop, req.Status, req.ProblemNote, time.Now()); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateStop(ctx, routeID, *stop); err != nil {
		return nil, fmt.Errorf("persist stop update: %w", err)
	}

	if s.Notification != nil && req.Status == models.StopInProgress {
		if err := s.Notification.SendCustomerPush(ctx, stop.Order.CustomerID,
			"Your provider is on site",
			"Your appointment has started.",
			map[string]string{"routeId": routeID, "stopId": stopID}); err != nil {
			logger.Warn("stop transition push failed", zap.String("stopID", stopID), zap.Error(err))
		}
	}

	logger.Info("route stop transitioned",
		zap.String("routeID", routeID),
		zap.String("stopID", stopID),
		zap.String("status", req.Status))

	return stop, nil
}

func (s *DefaultRouteService) ownedRoute(ctx context.Context, providerID, routeID string) (*models.Route, error) {
	route, err := s.Repo.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("fetch route %s: %w", routeID, err)
	}
	if route == nil {
		return nil, &scheduling.NotFoundError{Message: fmt.Sprintf("route %s not found", routeID)}
	}
	if route.ProviderID != providerID {
		return nil, &scheduling.ForbiddenError{Message: fmt.Sprintf("route %s belongs to another provider", routeID)}
	}
	return route, nil
}

func durationMinutes(startTime, endTime string) int {
	start, err1 := scheduling.ToMinutes(startTime)
	end, err2 := scheduling.ToMinutes(endTime)
	if err1 != nil || err2 != nil || end <= start {
		return 0
	}
	return end - start
}
