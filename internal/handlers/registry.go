package handlers

import (
	"staynest/internal/services"
	"staynest/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	ListingHandler *ListingHandler
	ReviewHandler  *ReviewHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		ListingHandler: NewListingHandler(base, svc.ListingService),
		ReviewHandler:  NewReviewHandler(base, svc.ReviewService),
	}
}
