package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser   = "user"
	RoleDealer = "dealer"
	RoleAdmin  = "admin"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Password    []byte             `bson:"password"`
	Role        string             `bson:"role"`
	DealerID    string             `bson:"dealer_id,omitempty"`
	LoginTokens []LoginToken       `bson:"login_tokens"`
	CreatedAt   primitive.DateTime `bson:"created_at"`
	UpdatedAt   primitive.DateTime `bson:"updated_at"`
}

type LoginToken struct {
	TokenID    string             `bson:"token_id"`
	Token      []byte             `bson:"token"`
	Expiration primitive.DateTime `bson:"expiration"`
	CreatedAt  primitive.DateTime `bson:"created_at"`
}

func ValidRole(r string) bool {
	return r == RoleUser || r == RoleDealer || r == RoleAdmin
}
