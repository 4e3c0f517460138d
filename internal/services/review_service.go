package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"staynest/internal/dto"
	"staynest/internal/logger"
	"staynest/internal/repositories"
	"staynest/pkg/apperrors"
)

type ReviewService interface {
	Create(ctx context.Context, listingID primitive.ObjectID, in *dto.ReviewInput) (primitive.ObjectID, error)
	Delete(ctx context.Context, listingID, reviewID primitive.ObjectID) error
}

type reviewService struct {
	listingRepo repositories.ListingRepository
	reviewRepo  repositories.ReviewRepository
	now         func() time.Time
}

func NewReviewService(listingRepo repositories.ListingRepository, reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
		now:         time.Now,
	}
}

// Create stores the review and appends its id to the listing.
// When the listing cannot take the reference the review record is deleted again.
func (s *reviewService) Create(ctx context.Context, listingID primitive.ObjectID, in *dto.ReviewInput) (primitive.ObjectID, error) {
	reviewID, err := s.reviewRepo.Create(ctx, in.ToModel(s.now()))
	if err != nil {
		return primitive.NilObjectID, mapStoreError(err)
	}

	if err := s.listingRepo.AppendReview(ctx, listingID, reviewID); err != nil {
		if delErr := s.reviewRepo.DeleteByID(ctx, reviewID); delErr != nil {
			logger.CtxWithError(ctx, "failed to remove unattached review", delErr, "review_id", reviewID.Hex())
		}
		return primitive.NilObjectID, mapStoreError(err)
	}

	logger.CtxInfo(ctx, "review created", "listing_id", listingID.Hex(), "review_id", reviewID.Hex())
	return reviewID, nil
}

// Delete detaches the review from the listing first, then deletes the record.
// If the second write fails the review is left unreferenced, never referenced-but-missing.
func (s *reviewService) Delete(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	removed, err := s.listingRepo.RemoveReview(ctx, listingID, reviewID)
	if err != nil {
		return mapStoreError(err)
	}
	if !removed {
		return apperrors.ErrReviewNotFound
	}

	if err := s.reviewRepo.DeleteByID(ctx, reviewID); err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			logger.CtxWarn(ctx, "detached review had no record", "review_id", reviewID.Hex())
			return nil
		}
		logger.CtxWithError(ctx, "review detached but not deleted", err, "review_id", reviewID.Hex())
		return mapStoreError(err)
	}

	logger.CtxInfo(ctx, "review deleted", "listing_id", listingID.Hex(), "review_id", reviewID.Hex())
	return nil
}
