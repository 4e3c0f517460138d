package handlers

import (
	"github.com/gin-gonic/gin"

	"staynest/internal/services"
	"staynest/pkg/apperrors"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r gin.IRouter) {
	reviews := r.Group("/listings/:id/reviews")
	{
		reviews.POST("", h.Create)
		reviews.DELETE("/:reviewId", h.Delete)
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	listingID, ok := h.ParseID(c, "id", apperrors.ErrListingNotFound)
	if !ok {
		return
	}
	input, ok := h.BindReview(c)
	if !ok {
		return
	}
	if _, err := h.reviewService.Create(c.Request.Context(), listingID, input); err != nil {
		h.Fail(c, err)
		return
	}
	h.Redirect(c, listingPath(listingID.Hex()))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	listingID, ok := h.ParseID(c, "id", apperrors.ErrListingNotFound)
	if !ok {
		return
	}
	reviewID, ok := h.ParseID(c, "reviewId", apperrors.ErrReviewNotFound)
	if !ok {
		return
	}
	if err := h.reviewService.Delete(c.Request.Context(), listingID, reviewID); err != nil {
		h.Fail(c, err)
		return
	}
	h.Redirect(c, listingPath(listingID.Hex()))
}
