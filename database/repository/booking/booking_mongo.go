// File: database/repository/booking/booking_mongo.go
package bookingRepo

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

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) GetBlocking(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"providerId":  providerID,
		"bookingDate": date,
		"status":      bson.M{"$in": models.BlockingStatuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Booking
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"providerId": providerID})
}

func (r *mongoBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"customerId": customerID})
}

func (r *mongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "bookingDate", Value: -1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Booking
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReserveSlot re-checks for an overlapping blocking booking and inserts
// atomically. Zero-padded "HH:mm" strings compare correctly lexicographically,
// so the half-open overlap test runs directly in the query.
func (r *mongoBookingRepo) ReserveSlot(ctx context.Context, b models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		conflictFilter := bson.M{
			"providerId":  b.ProviderID,
			"bookingDate": b.BookingDate,
			"status":      bson.M{"$in": models.BlockingStatuses},
			"startTime":   bson.M{"$lt": b.EndTime},
			"endTime":     bson.M{"$gt": b.StartTime},
		}
		count, err := r.coll.CountDocuments(sc, conflictFilter)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlotTaken
		}
		return r.coll.InsertOne(sc, b)
	})
	return err
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, mongo.ErrNoDocuments
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
