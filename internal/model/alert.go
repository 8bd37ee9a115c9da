package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// MinTargetDiscount is the lowest discount threshold (in RUB) a user can
// set on an alert.
const MinTargetDiscount = 50000

type DiscountAlert struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"-"`
	CarBrand       string             `bson:"car_brand" json:"car_brand"`
	CarModel       string             `bson:"car_model" json:"car_model"`
	TargetDiscount int                `bson:"target_discount" json:"target_discount"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	CreatedAt      primitive.DateTime `bson:"created_at" json:"created_at"`
}

const (
	NotificationTypeDiscountAlert = "discount_alert"
	NotificationTypeInfo          = "info"
	NotificationTypeSuccess       = "success"
)

type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"-"`
	Type       string             `bson:"type" json:"type"`
	Title      string             `bson:"title" json:"title"`
	Message    string             `bson:"message" json:"message"`
	CarBrand   string             `bson:"car_brand,omitempty" json:"car_brand,omitempty"`
	CarModel   string             `bson:"car_model,omitempty" json:"car_model,omitempty"`
	Discount   int                `bson:"discount,omitempty" json:"discount,omitempty"`
	DealerName string             `bson:"dealer_name,omitempty" json:"dealer_name,omitempty"`
	IsRead     bool               `bson:"is_read" json:"is_read"`
	CreatedAt  primitive.DateTime `bson:"created_at" json:"created_at"`
}
