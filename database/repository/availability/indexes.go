// File: database/repository/availability/indexes.go
package availabilityRepo

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

// EnsureAvailabilityIndexes backs the schedule invariants with unique
// compound indexes: one weekly record per (provider, dayOfWeek), one
// exception per (provider, date).
func EnsureAvailabilityIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := database.MongoClient.Database("hoofline")
	logger := utils.GetLogger()

	weeklyIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("weekly_availability").Indexes().CreateOne(ctx, weeklyIdx); err != nil {
		logger.Error("failed to create weekly availability index", zap.Error(err))
	}

	excIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("availability_exceptions").Indexes().CreateOne(ctx, excIdx); err != nil {
		logger.Error("failed to create availability exception index", zap.Error(err))
	}
}
