package database

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	Name                      = "carscope_db"
	CollectionDealers         = "dealers"
	CollectionUsers           = "users"
	CollectionAnalyticsEvents = "analytics_events"
	CollectionDiscountAlerts  = "discount_alerts"
	CollectionNotifications   = "notifications"
	CollectionRecognitions    = "recognitions"
)

type Database struct {
	*mongo.Database
}

var ErrNoDocumentsModified = errors.New("no documents modified")

func ConnectDB(ctx context.Context, dbURI string) (*mongo.Client, error) {
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(dbURI))
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionDealers).Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "dealer_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "brand", Value: 1}},
			},
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionUsers).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionAnalyticsEvents).Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{Keys: bson.D{{Key: "dealer_id", Value: 1}, {Key: "ts", Value: -1}}},
			{Keys: bson.D{{Key: "ts", Value: -1}}},
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionDiscountAlerts).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionNotifications).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionRecognitions).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "ts", Value: -1}},
		},
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}
