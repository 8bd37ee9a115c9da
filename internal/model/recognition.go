package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type RecognitionResult struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id,omitempty" json:"-"`
	Make       string             `bson:"make" json:"make"`
	Model      string             `bson:"model" json:"model"`
	Year       string             `bson:"year" json:"year"`
	Confidence float64            `bson:"confidence" json:"confidence"`
	Details    CarDetails         `bson:"details" json:"details"`
	Timestamp  primitive.DateTime `bson:"ts" json:"ts"`
}

type CarDetails struct {
	BodyType     string `bson:"body_type" json:"body_type"`
	Engine       string `bson:"engine" json:"engine"`
	Transmission string `bson:"transmission" json:"transmission"`
	FuelType     string `bson:"fuel_type" json:"fuel_type"`
}
