// File: database/repository/availability/availability_mongo.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hoofline/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoAvailabilityRepo) GetActiveWeekly(ctx context.Context, providerID string, dayOfWeek int) (*models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"providerId": providerID, "dayOfWeek": dayOfWeek, "isActive": true}
	var w models.WeeklyAvailability
	err := r.weekly.FindOne(ctx, filter).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *mongoAvailabilityRepo) ListWeekly(ctx context.Context, providerID string) ([]models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}})
	cursor, err := r.weekly.Find(ctx, bson.M{"providerId": providerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.WeeklyAvailability
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertWeekly replaces the record for (provider, dayOfWeek), keeping the
// at-most-one-active invariant without a separate deactivation step.
func (r *mongoAvailabilityRepo) UpsertWeekly(ctx context.Context, w models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	filter := bson.M{"providerId": w.ProviderID, "dayOfWeek": w.DayOfWeek}
	opts := options.Replace().SetUpsert(true)
	_, err := r.weekly.ReplaceOne(ctx, filter, w, opts)
	return err
}

func (r *mongoAvailabilityRepo) GetException(ctx context.Context, providerID, date string) (*models.AvailabilityException, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"providerId": providerID, "date": date}
	var e models.AvailabilityException
	err := r.exceptions.FindOne(ctx, filter).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *mongoAvailabilityRepo) ListExceptions(ctx context.Context, providerID, fromDate, toDate string) ([]models.AvailabilityException, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       bson.M{"$gte": fromDate, "$lte": toDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.exceptions.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.AvailabilityException
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoAvailabilityRepo) UpsertException(ctx context.Context, e models.AvailabilityException) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	filter := bson.M{"providerId": e.ProviderID, "date": e.Date}
	opts := options.Replace().SetUpsert(true)
	_, err := r.exceptions.ReplaceOne(ctx, filter, e, opts)
	return err
}

// DeleteException reverts the date to the weekly schedule.
func (r *mongoAvailabilityRepo) DeleteException(ctx context.Context, providerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.exceptions.DeleteOne(ctx, bson.M{"providerId": providerID, "date": date})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
