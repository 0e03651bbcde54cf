package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID     string             `bson:"productId" json:"productId"`
	Rating        float64            `bson:"rating" json:"rating"`
	Comment       string             `bson:"comment" json:"comment"`
	ReviewerName  string             `bson:"reviewerName" json:"reviewerName"`
	ReviewerEmail string             `bson:"reviewerEmail" json:"reviewerEmail"`
	Date          time.Time          `bson:"date" json:"date"`
}
