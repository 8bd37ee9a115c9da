package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	EventTypeCall         = "call"
	EventTypeWebsiteVisit = "website_visit"
)

type AnalyticsEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	DealerID  string             `bson:"dealer_id" json:"dealer_id"`
	EventType string             `bson:"event_type" json:"event_type"`
	CarBrand  string             `bson:"car_brand" json:"car_brand"`
	CarModel  string             `bson:"car_model" json:"car_model"`
	Timestamp primitive.DateTime `bson:"ts" json:"ts"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
}

func ValidEventType(t string) bool {
	return t == EventTypeCall || t == EventTypeWebsiteVisit
}
