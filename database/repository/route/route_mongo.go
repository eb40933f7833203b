// File: database/repository/route/route_mongo.go
package routeRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hoofline/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoRouteRepo) Create(ctx context.Context, route models.Route) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if route.ID == "" {
		route.ID = uuid.New().String()
	}
	route.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, route)
	return err
}

func (r *mongoRouteRepo) GetByID(ctx context.Context, id string) (*models.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var route models.Route
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&route)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *mongoRouteRepo) GetByProviderAndDate(ctx context.Context, providerID, date string) (*models.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var route models.Route
	err := r.coll.FindOne(ctx, bson.M{"providerId": providerID, "date": date}).Decode(&route)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *mongoRouteRepo) UpdateStop(ctx context.Context, routeID string, stop models.RouteStop) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": routeID, "stops.id": stop.ID}
	update := bson.M{"$set": bson.M{"stops.$": stop}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
