package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ReviewsCollection = "reviews"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Comment   string             `bson:"comment"`
	Rating    int                `bson:"rating"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type ReviewUpdate struct {
	Comment *string
	Rating  *int
}
