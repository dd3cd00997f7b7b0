package repositories

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rohandas-dev/cabinet/internal/config"
)

// ConnectMongo opens the metadata store and ensures the unique index on
// users.email, so concurrent registrations cannot both pass the duplicate
// check.
func ConnectMongo(ctx context.Context, cfg config.Config) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI()).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := client.Database(cfg.DBName)

	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Successfully connected to MongoDB")
	return db, nil
}

// PingMongo reports whether the metadata store is reachable.
func PingMongo(ctx context.Context, db *mongo.Database) bool {
	return db.Client().Ping(ctx, readpref.Primary()) == nil
}
