package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is ephemeral: created on add-to-cart, removed one by one or in
// bulk at checkout. Product fields are a snapshot taken at add time.
type CartItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	ProductID    string             `bson:"productId" json:"productId"`
	ProductName  string             `bson:"productName" json:"productName"`
	ProductImage string             `bson:"productImage" json:"productImage"`
	Price        float64            `bson:"price" json:"price"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Date         time.Time          `bson:"date" json:"date"`
}
