// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"hoofline/database"
	"hoofline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository persists provider accounts.
type ProviderRepository interface {
	Create(ctx context.Context, p models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	SetFCMToken(ctx context.Context, id, token string) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs the MongoDB-backed repository.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("hoofline")
	return &mongoProviderRepo{coll: db.Collection("providers")}
}
