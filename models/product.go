package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Discount    float64            `bson:"discount" json:"discount"`
	FinalPrice  float64            `bson:"finalPrice" json:"finalPrice"`
	CategoryID  string             `bson:"categoryId" json:"categoryId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	ExpiryDate  *time.Time         `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
}

// ProductUpdate carries the admin-editable fields; nil means "leave unchanged".
// Discount is deliberately absent: discount changes go through the dedicated
// endpoint so finalPrice stays in sync.
type ProductUpdate struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Price       *float64   `json:"price"`
	Stock       *int       `json:"stock"`
	CategoryID  *string    `json:"categoryId"`
	ExpiryDate  *time.Time `json:"expiryDate"`
}

// ProductSales is one row of the top-selling aggregation over order items.
type ProductSales struct {
	ProductID string `bson:"_id" json:"productId"`
	TotalSold int64  `bson:"totalSold" json:"totalSold"`
}
