// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"hoofline/database"
	"hoofline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository persists weekly schedules and date exceptions.
// Lookups return (nil, nil) when no record exists; absence is a normal
// fall-through case for the resolver, not an error.
type AvailabilityRepository interface {
	GetActiveWeekly(ctx context.Context, providerID string, dayOfWeek int) (*models.WeeklyAvailability, error)
	ListWeekly(ctx context.Context, providerID string) ([]models.WeeklyAvailability, error)
	UpsertWeekly(ctx context.Context, w models.WeeklyAvailability) error

	GetException(ctx context.Context, providerID, date string) (*models.AvailabilityException, error)
	ListExceptions(ctx context.Context, providerID, fromDate, toDate string) ([]models.AvailabilityException, error)
	UpsertException(ctx context.Context, e models.AvailabilityException) error
	DeleteException(ctx context.Context, providerID, date string) error
}

type mongoAvailabilityRepo struct {
	weekly     *mongo.Collection
	exceptions *mongo.Collection
}

// NewMongoAvailabilityRepo constructs the MongoDB-backed repository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("hoofline")
	return &mongoAvailabilityRepo{
		weekly:     db.Collection("weekly_availability"),
		exceptions: db.Collection("availability_exceptions"),
	}
}
