package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB is an explicitly constructed store handle. It is created once at
// startup and injected into every handler; its lifecycle is tied to the
// process, not to first use.
type DB struct {
	client *mongo.Client

	Users       *mongo.Collection
	Customers   *mongo.Collection
	Guides      *mongo.Collection
	TravelPlans *mongo.Collection
}

// Connect dials MongoDB and returns the store handle.
func Connect(ctx context.Context, uri, database string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	d := client.Database(database)
	return &DB{
		client:      client,
		Users:       d.Collection("users"),
		Customers:   d.Collection("customers"),
		Guides:      d.Collection("guides"),
		TravelPlans: d.Collection("travelplans"),
	}, nil
}

// EnsureIndexes creates the unique indexes that back the uniqueness
// guarantees. Inserts hitting these indexes fail with a duplicate-key
// error, which handlers map to a conflict.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	for _, c := range []*mongo.Collection{db.Customers, db.Guides} {
		_, err = c.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "phonenumber", Value: 1}}, Options: unique},
		})
		if err != nil {
			return fmt.Errorf("%s indexes: %w", c.Name(), err)
		}
	}
	return nil
}

// Close disconnects from MongoDB with a bounded deadline.
func (db *DB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return db.client.Disconnect(ctx)
}
