package dto

import (
	"time"

	"staynest/internal/models"
)

// ReviewInput is the validated content of a {review: {...}} payload.
type ReviewInput struct {
	Comment string
	Rating  int
}

func (in *ReviewInput) ToModel(now time.Time) *models.Review {
	return &models.Review{
		Comment:   in.Comment,
		Rating:    in.Rating,
		CreatedAt: now.UTC(),
	}
}
