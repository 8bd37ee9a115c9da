package database

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carscope/internal/model"
)

// The event log keeps only the newest maxAnalyticsEvents entries; older
// ones are trimmed after each insert.
const maxAnalyticsEvents = 1000

func (db Database) AnalyticsEventInsert(ctx context.Context, e model.AnalyticsEvent) error {
	_, err := db.Collection(CollectionAnalyticsEvents).InsertOne(ctx, e)
	if err != nil {
		return errors.Wrapf(err, "error inserting AnalyticsEvent for DealerID: %s", e.DealerID)
	}
	return db.analyticsEventsTrim(ctx)
}

func (db Database) analyticsEventsTrim(ctx context.Context) error {
	opts := options.Find().
		SetSort(bson.M{"ts": -1}).
		SetSkip(maxAnalyticsEvents).
		SetProjection(bson.M{"_id": 1})
	cur, err := db.Collection(CollectionAnalyticsEvents).Find(ctx, bson.M{}, opts)
	if err != nil {
		return errors.Wrap(err, "error getting cursor to find AnalyticsEvents beyond cap")
	}
	var overflow []model.AnalyticsEvent
	if err = cur.All(ctx, &overflow); err != nil {
		return errors.Wrap(err, "error getting AnalyticsEvents beyond cap from cursor")
	}
	if len(overflow) == 0 {
		return nil
	}

	ids := make([]any, 0, len(overflow))
	for _, e := range overflow {
		ids = append(ids, e.ID)
	}
	_, err = db.Collection(CollectionAnalyticsEvents).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return errors.Wrapf(err, "error trimming %d AnalyticsEvent(s) beyond cap", len(ids))
}

func (db Database) AnalyticsEventsFindByDealer(ctx context.Context, dealerID string) ([]model.AnalyticsEvent, error) {
	var es []model.AnalyticsEvent
	opts := options.Find().SetSort(bson.M{"ts": -1})
	cur, err := db.Collection(CollectionAnalyticsEvents).Find(ctx, bson.M{"dealer_id": dealerID}, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find AnalyticsEvents for DealerID: %s", dealerID)
	}
	if err = cur.All(ctx, &es); err != nil {
		return nil, errors.Wrapf(err, "error getting AnalyticsEvents from cursor for DealerID: %s", dealerID)
	}
	return es, nil
}
