package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"ucoportal/internal/config"
)

// Connect opens a MongoDB client with command tracing enabled and verifies
// connectivity with a ping.
func Connect(ctx context.Context, c config.MongoConfig) (*mongo.Database, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("invalid mongo config: uri is required")
	}

	opts := options.Client().
		ApplyURI(c.URI).
		SetMonitor(otelmongo.NewMonitor())
	if c.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(c.MaxPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(c.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(c.Database), nil
}

// EnsureIndexes creates the indexes every collection relies on. It is safe to
// call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
		},
		"fbos": {
			{Keys: bson.D{{Key: "fboId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "assignedCollectors", Value: 1}}},
			{Keys: bson.D{{Key: "address.city", Value: 1}}},
			{Keys: bson.D{{Key: "enrollmentDetails.status", Value: 1}}},
		},
		"collections": {
			{Keys: bson.D{{Key: "collectionId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "fboId", Value: 1}}},
			{Keys: bson.D{{Key: "collectorId", Value: 1}}},
		},
		"trips": {
			{Keys: bson.D{{Key: "tripId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "collectorId", Value: 1}}},
		},
		"payments": {
			{Keys: bson.D{{Key: "paymentId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "fboId", Value: 1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		"pricing": {
			{Keys: bson.D{{Key: "qualityGrade", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
