package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the repositories.
const (
	CollectionUsers         = "users"
	CollectionRoles         = "roles"
	CollectionCars          = "cars"
	CollectionCarDetails    = "car_details"
	CollectionStates        = "states"
	CollectionCities        = "cities"
	CollectionAreas         = "areas"
	CollectionCategories    = "categories"
	CollectionSubCategories = "sub_categories"
	CollectionAuditLogs     = "audit_logs"
)

// NewConnection connects to MongoDB and returns a handle on the named
// database. The returned client owns a concurrency-safe connection pool
// shared by every request handler.
func NewConnection(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	ensureIndexes(ctx, db)

	return db, nil
}

// ensureIndexes creates the unique indexes the application relies on:
// users.email and roles.name uniqueness, plus the 1:1 key for car details.
// Index creation is idempotent, so running it at every startup is safe.
func ensureIndexes(ctx context.Context, db *mongo.Database) {
	specs := map[string]mongo.IndexModel{
		CollectionUsers: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		CollectionRoles: {
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		CollectionCarDetails: {
			Keys:    bson.D{{Key: "car_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		CollectionCars: {
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
		CollectionAreas: {
			Keys: bson.D{{Key: "city_id", Value: 1}},
		},
	}

	for coll, model := range specs {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			log.Printf("WARNING: failed to create index on %s: %v", coll, err)
		}
	}
}
