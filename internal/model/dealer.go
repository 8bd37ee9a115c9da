package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Dealer struct {
	ID           string             `bson:"dealer_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Brand        string             `bson:"brand" json:"brand"`
	Address      string             `bson:"address" json:"address"`
	Phone        string             `bson:"phone" json:"phone"`
	Website      string             `bson:"website" json:"website"`
	Latitude     float64            `bson:"lat" json:"lat"`
	Longitude    float64            `bson:"lng" json:"lng"`
	WorkingHours string             `bson:"working_hours" json:"working_hours"`
	Services     []string           `bson:"services" json:"services"`
	CreatedAt    primitive.DateTime `bson:"created_at,omitempty" json:"-"`
	UpdatedAt    primitive.DateTime `bson:"updated_at,omitempty" json:"-"`
}

// DealerOffer is a Dealer with a generated discount attached. A zero
// Discount means the dealer currently has no offer.
type DealerOffer struct {
	Dealer
	Discount        int    `json:"discount,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	SpecialOffer    string `json:"special_offer,omitempty"`
	HasModel        bool   `json:"has_model"`
}
