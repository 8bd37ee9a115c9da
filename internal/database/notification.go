package database

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carscope/internal/model"
)

// Each user keeps only the newest maxNotificationsPerUser notifications.
const maxNotificationsPerUser = 50

func (db Database) NotificationInsert(ctx context.Context, n model.Notification) error {
	_, err := db.Collection(CollectionNotifications).InsertOne(ctx, n)
	if err != nil {
		return errors.Wrapf(err, "error inserting Notification for UserID: %s", n.UserID.Hex())
	}
	return db.notificationsTrim(ctx, n.UserID)
}

func (db Database) notificationsTrim(ctx context.Context, userID primitive.ObjectID) error {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(maxNotificationsPerUser).
		SetProjection(bson.M{"_id": 1})
	cur, err := db.Collection(CollectionNotifications).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return errors.Wrapf(err, "error getting cursor to find Notifications beyond cap for UserID: %s", userID.Hex())
	}
	var overflow []model.Notification
	if err = cur.All(ctx, &overflow); err != nil {
		return errors.Wrapf(err, "error getting Notifications beyond cap from cursor for UserID: %s", userID.Hex())
	}
	if len(overflow) == 0 {
		return nil
	}

	ids := make([]any, 0, len(overflow))
	for _, n := range overflow {
		ids = append(ids, n.ID)
	}
	_, err = db.Collection(CollectionNotifications).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return errors.Wrapf(err, "error trimming %d Notification(s) beyond cap for UserID: %s", len(ids), userID.Hex())
}

func (db Database) NotificationsFindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Notification, error) {
	var ns []model.Notification
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := db.Collection(CollectionNotifications).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Notifications for UserID: %s", userID.Hex())
	}
	if err = cur.All(ctx, &ns); err != nil {
		return nil, errors.Wrapf(err, "error getting Notifications from cursor for UserID: %s", userID.Hex())
	}
	return ns, nil
}

// NotificationMarkRead flips is_read on exactly the matching notification.
// Marking an already read notification again is a no-op.
func (db Database) NotificationMarkRead(ctx context.Context, userID primitive.ObjectID, notificationID primitive.ObjectID) error {
	res, err := db.Collection(CollectionNotifications).UpdateOne(
		ctx,
		bson.M{"_id": notificationID, "user_id": userID},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return errors.Wrapf(err, "error marking Notification as read, ID: %s, UserID: %s",
			notificationID.Hex(), userID.Hex())
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(ErrNoDocumentsModified,
			"Notification not found when marking as read, ID: %s, UserID: %s", notificationID.Hex(), userID.Hex())
	}
	return nil
}

func (db Database) NotificationsClear(ctx context.Context, userID primitive.ObjectID) error {
	_, err := db.Collection(CollectionNotifications).DeleteMany(ctx, bson.M{"user_id": userID})
	return errors.Wrapf(err, "error clearing Notifications for UserID: %s", userID.Hex())
}
