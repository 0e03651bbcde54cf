package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is immutable after insertion except for Status. Customer and item
// fields are snapshots taken at checkout; later product or profile edits
// must not show up in order history.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID       string             `bson:"userId" json:"userId"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      Address            `bson:"billingAddress" json:"billingAddress"`
	Items        []OrderItem        `bson:"items" json:"items"`
	TotalAmount  float64            `bson:"totalAmount" json:"totalAmount"`
	Status       OrderStatus        `bson:"status" json:"status"`
	OrderDate    time.Time          `bson:"orderDate" json:"orderDate"`
}

type OrderItem struct {
	ProductID    string  `bson:"productId" json:"productId"`
	ProductName  string  `bson:"productName" json:"productName"`
	ProductImage string  `bson:"productImage" json:"productImage"`
	Price        float64 `bson:"price" json:"price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
}
