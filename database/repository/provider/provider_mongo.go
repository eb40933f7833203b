// File: database/repository/provider/provider_mongo.go
package providerRepo

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

func (r *mongoProviderRepo) Create(ctx context.Context, p models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return r.get(ctx, bson.M{"id": id})
}

func (r *mongoProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	return r.get(ctx, bson.M{"email": email})
}

func (r *mongoProviderRepo) get(ctx context.Context, filter bson.M) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Provider
	err := r.coll.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoProviderRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.setField(ctx, id, "tokenHash", tokenHash)
}

func (r *mongoProviderRepo) SetFCMToken(ctx context.Context, id, token string) error {
	return r.setField(ctx, id, "fcmToken", token)
}

func (r *mongoProviderRepo) setField(ctx context.Context, id, field, value string) error {
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
