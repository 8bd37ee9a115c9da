package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"carscope/internal/model"
)

func (db Database) UserInsert(ctx context.Context, u model.User) (id string, err error) {
	u.LoginTokens = []model.LoginToken{}
	u.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	u.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	r, err := db.Collection(CollectionUsers).InsertOne(ctx, u)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting User with email: %s", u.Email)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

// UserSeed inserts a demo account unless its email is already taken.
func (db Database) UserSeed(ctx context.Context, u model.User) error {
	err := db.Collection(CollectionUsers).FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return errors.Wrapf(err, "error checking for existing User with email: %s", u.Email)
	}
	_, err = db.UserInsert(ctx, u)
	return err
}

func (db Database) UserFindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := db.Collection(CollectionUsers).FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, errors.Wrapf(err, "error finding User with email: %s", email)
}

func (db Database) UserFindByID(ctx context.Context, id string) (model.User, error) {
	var u model.User

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return u, errors.Wrapf(err, "error creating ObjectID from hex: %s", id)
	}

	err = db.Collection(CollectionUsers).FindOne(ctx, bson.M{"_id": objID}).Decode(&u)
	return u, errors.Wrapf(err, "error finding User with ID: %s", id)
}

func (db Database) UserAddLoginToken(ctx context.Context, userID string, lt model.LoginToken) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.Wrapf(err, "error creating ObjectID from hex: %s", userID)
	}

	lt.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	res, err := db.Collection(CollectionUsers).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$push": bson.M{
			"login_tokens": bson.M{
				"$each":     []model.LoginToken{lt},
				"$position": 0,
				"$slice":    8,
			},
		}},
	)
	if err != nil {
		return errors.Wrapf(err, "error when adding login token to User with ID: %s", userID)
	}
	if res.ModifiedCount == 0 {
		return errors.Wrapf(ErrNoDocumentsModified, "User not modified when adding login token, ID: %s", userID)
	}
	return nil
}

func (db Database) UserRemoveLoginToken(ctx context.Context, userID string, tokenID string) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.Wrapf(err, "error creating ObjectID from hex: %s", userID)
	}

	res, err := db.Collection(CollectionUsers).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$pull": bson.M{"login_tokens": bson.M{"token_id": tokenID}}},
	)
	if err != nil {
		return errors.Wrapf(err, "error when removing login token from User with ID: %s, token ID: %s", userID, tokenID)
	}
	if res.ModifiedCount == 0 {
		return errors.Wrapf(ErrNoDocumentsModified,
			"User not modified when removing login token, ID: %s, token ID: %s", userID, tokenID)
	}
	return nil
}
