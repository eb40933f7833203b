// File: database/repository/route/interface.go
package routeRepo

import (
	"context"

	"hoofline/database"
	"hoofline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RouteRepository persists planned routes and their stop execution state.
type RouteRepository interface {
	Create(ctx context.Context, r models.Route) error
	GetByID(ctx context.Context, id string) (*models.Route, error)
	GetByProviderAndDate(ctx context.Context, providerID, date string) (*models.Route, error)
	// UpdateStop writes one stop's status/actual-time fields back in place.
	UpdateStop(ctx context.Context, routeID string, stop models.RouteStop) error
}

type mongoRouteRepo struct {
	coll *mongo.Collection
}

// NewMongoRouteRepo constructs the MongoDB-backed repository.
func NewMongoRouteRepo() RouteRepository {
	db := database.MongoClient.Database("hoofline")
	return &mongoRouteRepo{coll: db.Collection("routes")}
}
