// File: database/repository/customer/customer_mongo.go
package customerRepo

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

func (r *mongoCustomerRepo) Create(ctx context.Context, c models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.get(ctx, bson.M{"id": id})
}

func (r *mongoCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.get(ctx, bson.M{"email": email})
}

func (r *mongoCustomerRepo) get(ctx context.Context, filter bson.M) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c models.Customer
	err := r.coll.FindOne(ctx, filter).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.setField(ctx, id, "tokenHash", tokenHash)
}

func (r *mongoCustomerRepo) SetFCMToken(ctx context.Context, id, token string) error {
	return r.setField(ctx, id, "fcmToken", token)
}

func (r *mongoCustomerRepo) setField(ctx context.Context, id, field, value string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
