// File: database/repository/customer/interface.go
package customerRepo

import (
	"context"

	"hoofline/database"
	"hoofline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerRepository persists customer accounts.
type CustomerRepository interface {
	Create(ctx context.Context, c models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	SetFCMToken(ctx context.Context, id, token string) error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs the MongoDB-backed repository.
func NewMongoCustomerRepo() CustomerRepository {
	db := database.MongoClient.Database("hoofline")
	return &mongoCustomerRepo{coll: db.Collection("customers")}
}
