package database

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carscope/internal/model"
)

// Each user keeps only the newest maxRecognitionsPerUser history entries.
const maxRecognitionsPerUser = 100

func (db Database) RecognitionInsert(ctx context.Context, r model.RecognitionResult) (id string, err error) {
	res, err := db.Collection(CollectionRecognitions).InsertOne(ctx, r)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting RecognitionResult for UserID: %s", r.UserID.Hex())
	}
	if err = db.recognitionsTrim(ctx, r.UserID); err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) recognitionsTrim(ctx context.Context, userID primitive.ObjectID) error {
	opts := options.Find().
		SetSort(bson.M{"ts": -1}).
		SetSkip(maxRecognitionsPerUser).
		SetProjection(bson.M{"_id": 1})
	cur, err := db.Collection(CollectionRecognitions).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return errors.Wrapf(err, "error getting cursor to find RecognitionResults beyond cap for UserID: %s", userID.Hex())
	}
	var overflow []model.RecognitionResult
	if err = cur.All(ctx, &overflow); err != nil {
		return errors.Wrapf(err, "error getting RecognitionResults beyond cap from cursor for UserID: %s", userID.Hex())
	}
	if len(overflow) == 0 {
		return nil
	}

	ids := make([]any, 0, len(overflow))
	for _, r := range overflow {
		ids = append(ids, r.ID)
	}
	_, err = db.Collection(CollectionRecognitions).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return errors.Wrapf(err, "error trimming %d RecognitionResult(s) beyond cap for UserID: %s", len(ids), userID.Hex())
}

func (db Database) RecognitionsFindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.RecognitionResult, error) {
	var rs []model.RecognitionResult
	opts := options.Find().SetSort(bson.M{"ts": -1})
	cur, err := db.Collection(CollectionRecognitions).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find RecognitionResults for UserID: %s", userID.Hex())
	}
	if err = cur.All(ctx, &rs); err != nil {
		return nil, errors.Wrapf(err, "error getting RecognitionResults from cursor for UserID: %s", userID.Hex())
	}
	return rs, nil
}
