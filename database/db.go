package database

import (
	"context"
	"time"

	"hoofline/config"
	"hoofline/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects and pings MongoDB, failing fast when the database is
// unreachable at startup.
func InitDB() {
	logger := utils.GetLogger()

	timeout := time.Duration(config.AppConfig.DBConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Fatal("mongodb connect failed", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("mongodb ping failed", zap.Error(err))
	}

	MongoClient = client
	logger.Info("connected to mongodb", zap.Duration("connectTimeout", timeout))
}
