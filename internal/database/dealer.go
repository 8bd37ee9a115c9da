package database

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carscope/internal/model"
)

// DealersSeed loads the static catalog into the dealers collection once.
// The stored copy is the one admin CRUD operates on; the in-memory catalog
// itself stays untouched.
func (db Database) DealersSeed(ctx context.Context, dealers []model.Dealer) error {
	count, err := db.Collection(CollectionDealers).CountDocuments(ctx, bson.M{})
	if err != nil {
		return errors.Wrap(err, "error counting Dealers before seeding")
	}
	if count > 0 {
		return nil
	}

	docs := make([]any, 0, len(dealers))
	for _, d := range dealers {
		d.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
		d.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())
		docs = append(docs, d)
	}
	_, err = db.Collection(CollectionDealers).InsertMany(ctx, docs)
	return errors.Wrapf(err, "error seeding %d Dealer(s)", len(dealers))
}

func (db Database) DealersFindAll(ctx context.Context) ([]model.Dealer, error) {
	var ds []model.Dealer
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cur, err := db.Collection(CollectionDealers).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error getting cursor to find all Dealers")
	}
	if err = cur.All(ctx, &ds); err != nil {
		return nil, errors.Wrap(err, "error getting all Dealers from cursor")
	}
	return ds, nil
}

func (db Database) DealersFindByBrand(ctx context.Context, brand string) ([]model.Dealer, error) {
	var ds []model.Dealer
	opts := options.Find().SetSort(bson.M{"_id": 1})
	filter := bson.M{"brand": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(brand) + "$", Options: "i"}}
	cur, err := db.Collection(CollectionDealers).Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Dealers with brand: %s", brand)
	}
	if err = cur.All(ctx, &ds); err != nil {
		return nil, errors.Wrapf(err, "error getting Dealers from cursor, brand: %s", brand)
	}
	return ds, nil
}

func (db Database) DealerInsert(ctx context.Context, d model.Dealer) error {
	d.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	d.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())
	_, err := db.Collection(CollectionDealers).InsertOne(ctx, d)
	return errors.Wrapf(err, "error inserting Dealer with ID: %s", d.ID)
}

func (db Database) DealerUpdate(ctx context.Context, d model.Dealer) error {
	res, err := db.Collection(CollectionDealers).UpdateOne(
		ctx,
		bson.M{"dealer_id": d.ID},
		bson.M{"$set": bson.M{
			"name":          d.Name,
			"brand":         d.Brand,
			"address":       d.Address,
			"phone":         d.Phone,
			"website":       d.Website,
			"lat":           d.Latitude,
			"lng":           d.Longitude,
			"working_hours": d.WorkingHours,
			"services":      d.Services,
			"updated_at":    primitive.NewDateTimeFromTime(time.Now()),
		}},
	)
	if err != nil {
		return errors.Wrapf(err, "error updating Dealer with ID: %s", d.ID)
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(ErrNoDocumentsModified, "Dealer not found when updating, ID: %s", d.ID)
	}
	return nil
}

func (db Database) DealerRemove(ctx context.Context, dealerID string) error {
	res, err := db.Collection(CollectionDealers).DeleteOne(ctx, bson.M{"dealer_id": dealerID})
	if err != nil {
		return errors.Wrapf(err, "error removing Dealer with ID: %s", dealerID)
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(ErrNoDocumentsModified, "Dealer not found when removing, ID: %s", dealerID)
	}
	return nil
}
