package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image" json:"image"`
}

// CategoryCount is one row of the products-per-category aggregation.
type CategoryCount struct {
	CategoryID string `bson:"_id" json:"categoryId"`
	Count      int64  `bson:"count" json:"count"`
}
