package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      string             `bson:"role" json:"role"`
	Address   Address            `bson:"address" json:"address"`
	Wishlist  []string           `bson:"wishlist,omitempty" json:"wishlist"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Address is the billing address embedded in User and snapshotted into orders.
type Address struct {
	Country    string `bson:"country" json:"country"`
	City       string `bson:"city" json:"city"`
	Street     string `bson:"street" json:"street"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
}

// UserUpdate carries the mutable profile fields; nil means "leave unchanged".
type UserUpdate struct {
	Name    *string  `json:"name"`
	Phone   *string  `json:"phone"`
	Role    *string  `json:"role"`
	Address *Address `json:"address"`
}
