package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carscope/internal/model"
)

func (db Database) AlertInsert(ctx context.Context, a model.DiscountAlert) (id string, err error) {
	a.IsActive = true
	a.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	r, err := db.Collection(CollectionDiscountAlerts).InsertOne(ctx, a)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting DiscountAlert for UserID: %s", a.UserID.Hex())
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) AlertsFindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.DiscountAlert, error) {
	return db.alertsFind(ctx, bson.M{"user_id": userID})
}

func (db Database) AlertsFindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]model.DiscountAlert, error) {
	return db.alertsFind(ctx, bson.M{"user_id": userID, "is_active": true})
}

// AlertsFindAllActive feeds the periodic alert check with every active
// alert across users.
func (db Database) AlertsFindAllActive(ctx context.Context) ([]model.DiscountAlert, error) {
	return db.alertsFind(ctx, bson.M{"is_active": true})
}

func (db Database) alertsFind(ctx context.Context, filter bson.M) ([]model.DiscountAlert, error) {
	var as []model.DiscountAlert
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := db.Collection(CollectionDiscountAlerts).Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find DiscountAlerts, filter: %v", filter)
	}
	if err = cur.All(ctx, &as); err != nil {
		return nil, errors.Wrapf(err, "error getting DiscountAlerts from cursor, filter: %v", filter)
	}
	return as, nil
}

// AlertRemove deletes the user's alert. An unknown alert ID is a no-op,
// not an error.
func (db Database) AlertRemove(ctx context.Context, userID primitive.ObjectID, alertID primitive.ObjectID) error {
	_, err := db.Collection(CollectionDiscountAlerts).DeleteOne(ctx, bson.M{"_id": alertID, "user_id": userID})
	return errors.Wrapf(err, "error removing DiscountAlert with ID: %s for UserID: %s", alertID.Hex(), userID.Hex())
}
