// File: database/repository/provider/indexes.go
package providerRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hoofline/database"
	"hoofline/utils"

	"go.uber.org/zap"
)

// EnsureProviderIndexes enforces one account per email address.
func EnsureProviderIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := database.MongoClient.Database("hoofline")
	logger := utils.GetLogger()

	emailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("providers").Indexes().CreateOne(ctx, emailIdx); err != nil {
		logger.Error("failed to create provider email index", zap.Error(err))
	}
}
