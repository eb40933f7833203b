// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"hoofline/database"
	"hoofline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by ReserveSlot when a blocking booking already
// occupies any part of the requested window at insert time.
var ErrSlotTaken = errors.New("slot already taken")

// BookingRepository persists appointment records. Bookings are append-only
// apart from status transitions; deletion is never exposed.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetBlocking returns the pending/confirmed bookings for one provider-day.
	GetBlocking(ctx context.Context, providerID, date string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// ReserveSlot inserts the booking inside a transaction that re-checks for
	// overlapping blocking bookings. Slot computation alone cannot prevent a
	// double-booking under concurrent requests; this is where the conflict is
	// actually excluded.
	ReserveSlot(ctx context.Context, b models.Booking) error
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoBookingRepo constructs the MongoDB-backed repository.
func NewMongoBookingRepo() BookingRepository {
	client := database.MongoClient
	return &mongoBookingRepo{
		client: client,
		coll:   client.Database("hoofline").Collection("bookings"),
	}
}
