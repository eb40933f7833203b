package models

import "time"

// Booking statuses. Only pending and confirmed block new slots; the rest keep
// the record around for the audit trail without blocking anything.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no_show"
)

// BlockingStatuses are the booking statuses that occupy a slot.
var BlockingStatuses = []string{BookingPending, BookingConfirmed}

// Booking is one appointment instance. Bookings are never deleted; status
// transitions are the only mutation after creation.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	CustomerID  string    `bson:"customerId" json:"customerId"`
	ServiceType string    `bson:"serviceType" json:"serviceType"`
	BookingDate string    `bson:"bookingDate" json:"bookingDate"` // "YYYY-MM-DD"
	StartTime   string    `bson:"startTime" json:"startTime"`     // "HH:mm"
	EndTime     string    `bson:"endTime" json:"endTime"`         // "HH:mm"
	Status      string    `bson:"status" json:"status"`
	Location    *Location `bson:"location,omitempty" json:"location,omitempty"` // customer yard snapshot at booking time
	Price       float64   `bson:"price,omitempty" json:"price,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsBlocking reports whether this booking occupies its time window.
func (b Booking) IsBlocking() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// CreateBookingRequest is the booking endpoint payload.
type CreateBookingRequest struct {
	ProviderID      string   `json:"providerId" binding:"required"`
	BookingDate     string   `json:"bookingDate" binding:"required"`
	StartTime       string   `json:"startTime" binding:"required"`
	DurationMinutes int      `json:"durationMinutes"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Notes           string   `json:"notes"`
}
