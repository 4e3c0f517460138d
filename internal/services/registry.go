package services

import "staynest/internal/repositories"

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	ListingService ListingService
	ReviewService  ReviewService
}

func NewServiceContainer(listingRepo repositories.ListingRepository, reviewRepo repositories.ReviewRepository) *ServiceContainer {
	return &ServiceContainer{
		ListingService: NewListingService(listingRepo, reviewRepo),
		ReviewService:  NewReviewService(listingRepo, reviewRepo),
	}
}
