package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"staynest/internal/dto"
	"staynest/internal/logger"
	"staynest/internal/models"
	"staynest/internal/repositories"
)

type ListingService interface {
	List(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Listing, error)
	GetWithReviews(ctx context.Context, id primitive.ObjectID) (*models.ListingDetails, error)
	Create(ctx context.Context, in *dto.ListingInput) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, in *dto.ListingInput) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type listingService struct {
	listingRepo repositories.ListingRepository
	reviewRepo  repositories.ReviewRepository
}

func NewListingService(listingRepo repositories.ListingRepository, reviewRepo repositories.ReviewRepository) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *listingService) List(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return listings, nil
}

func (s *listingService) Get(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return listing, nil
}

// GetWithReviews expands the listing's review references into full reviews.
func (s *listingService) GetWithReviews(ctx context.Context, id primitive.ObjectID) (*models.ListingDetails, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}

	reviews, err := s.reviewRepo.FindByIDs(ctx, listing.Reviews)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return &models.ListingDetails{Listing: *listing, ReviewDocs: reviews}, nil
}

func (s *listingService) Create(ctx context.Context, in *dto.ListingInput) (primitive.ObjectID, error) {
	id, err := s.listingRepo.Create(ctx, in.ToModel())
	if err != nil {
		return primitive.NilObjectID, mapStoreError(err)
	}
	logger.CtxInfo(ctx, "listing created", "listing_id", id.Hex())
	return id, nil
}

func (s *listingService) Update(ctx context.Context, id primitive.ObjectID, in *dto.ListingInput) error {
	if err := s.listingRepo.UpdateByID(ctx, id, in.ToUpdate()); err != nil {
		return mapStoreError(err)
	}
	logger.CtxInfo(ctx, "listing updated", "listing_id", id.Hex())
	return nil
}

// Delete removes the listing and then the reviews it owned.
// A failure of the second step leaves orphaned reviews behind; it is reported, not rolled back.
func (s *listingService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.listingRepo.DeleteByID(ctx, id)
	if err != nil {
		return mapStoreError(err)
	}

	removed, err := s.reviewRepo.DeleteByIDs(ctx, deleted.Reviews)
	if err != nil {
		logger.CtxWithError(ctx, "listing deleted but its reviews were not", err, "listing_id", id.Hex())
		return mapStoreError(err)
	}

	logger.CtxInfo(ctx, "listing deleted", "listing_id", id.Hex(), "reviews_deleted", removed)
	return nil
}
