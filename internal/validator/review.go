package validator

import (
	"fmt"

	"staynest/internal/dto"
	"staynest/internal/models"
)

var ratingRule = fmt.Sprintf("gte=%d,lte=%d", models.MinRating, models.MaxRating)

// ValidateReview checks a {review: {...}} payload. The input is only returned when valid.
func (v *Validator) ValidateReview(body dto.Body) (*dto.ReviewInput, FieldErrors) {
	var errs FieldErrors
	root := v.object("", body, &errs)

	var in dto.ReviewInput
	if review, ok := root.requiredObject("review"); ok {
		in.Comment = review.requiredString("comment")
		in.Rating = review.requiredInteger("rating", ratingRule)
		review.done()
	}
	root.done()

	if !errs.Valid() {
		return nil, errs
	}
	return &in, nil
}
