package models

import "time"

// Route stop statuses. A stop escapes to "problem" from any active status and
// carries the provider's note. No recovery transition out of "problem" is
// defined; the service layer does not invent one, and it does not reject one
// either.
const (
	StopPending    = "pending"
	StopInProgress = "in_progress"
	StopCompleted  = "completed"
	StopProblem    = "problem"
)

// Route is one provider's planned multi-stop visiting day.
type Route struct {
	ID         string      `bson:"id" json:"id"`
	ProviderID string      `bson:"providerId" json:"providerId"`
	Date       string      `bson:"date" json:"date"` // "YYYY-MM-DD"
	Stops      []RouteStop `bson:"stops" json:"stops"`
	CreatedAt  time.Time   `bson:"createdAt" json:"createdAt"`
}

// RouteOrder is the work item a stop visits: one customer/service pairing,
// usually planned from a confirmed booking.
type RouteOrder struct {
	BookingID   string    `bson:"bookingId" json:"bookingId"`
	CustomerID  string    `bson:"customerId" json:"customerId"`
	ServiceType string    `bson:"serviceType" json:"serviceType"`
	Location    *Location `bson:"location,omitempty" json:"location,omitempty"`
}

// RouteStop wraps a RouteOrder with sequencing and execution state. StopOrder
// values within a route are unique and contiguous starting at 1 (validated at
// planning time).
type RouteStop struct {
	ID                   string     `bson:"id" json:"id"`
	Order                RouteOrder `bson:"order" json:"order"`
	StopOrder            int        `bson:"stopOrder" json:"stopOrder"`
	EstimatedArrival     string     `bson:"estimatedArrival,omitempty" json:"estimatedArrival,omitempty"` // "HH:mm"
	EstimatedDurationMin int        `bson:"estimatedDurationMin" json:"estimatedDurationMin"`
	ActualArrival        *time.Time `bson:"actualArrival,omitempty" json:"actualArrival,omitempty"`
	ActualDeparture      *time.Time `bson:"actualDeparture,omitempty" json:"actualDeparture,omitempty"`
	Status               string     `bson:"status" json:"status"`
	ProblemNote          string     `bson:"problemNote,omitempty" json:"problemNote,omitempty"`
}

// RouteProgress is the derived execution summary for a route. Completed and
// problem stops both count as settled.
type RouteProgress struct {
	TotalStops   int `json:"totalStops"`
	SettledStops int `json:"settledStops"`
}

// StopTransitionRequest is the stop-update endpoint payload.
type StopTransitionRequest struct {
	Status      string `json:"status" binding:"required"`
	ProblemNote string `json:"problemNote"`
}
