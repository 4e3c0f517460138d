package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/internal/models"
	"staynest/internal/services"
	"staynest/pkg/apperrors"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *ListingHandler) RegisterRoutes(r gin.IRouter) {
	listings := r.Group("/listings")
	{
		listings.GET("", h.Index)
		listings.GET("/new", h.New)
		listings.POST("", h.Create)
		listings.GET("/:id", h.Show)
		listings.GET("/:id/edit", h.Edit)
		listings.PUT("/:id", h.Update)
		listings.DELETE("/:id", h.Delete)
	}
}

func (h *ListingHandler) Index(c *gin.Context) {
	listings, err := h.listingService.List(c.Request.Context())
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "listings/index", gin.H{
		"Title":    "All Listings",
		"Listings": listings,
	})
}

func (h *ListingHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "listings/new", gin.H{
		"Title":   "New Listing",
		"Listing": &models.Listing{},
	})
}

func (h *ListingHandler) Create(c *gin.Context) {
	input, ok := h.BindListing(c)
	if !ok {
		return
	}
	if _, err := h.listingService.Create(c.Request.Context(), input); err != nil {
		h.Fail(c, err)
		return
	}
	h.Redirect(c, "/listings")
}

func (h *ListingHandler) Show(c *gin.Context) {
	id, ok := h.ParseID(c, "id", apperrors.ErrListingNotFound)
	if !ok {
		return
	}
	details, err := h.listingService.GetWithReviews(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "listings/show", gin.H{
		"Title":   details.Title,
		"Listing": details,
	})
}

func (h *ListingHandler) Edit(c *gin.Context) {
	id, ok := h.ParseID(c, "id", apperrors.ErrListingNotFound)
	if !ok {
		return
	}
	listing, err := h.listingService.Get(c.Request.Context(), id)
	if err != nil {
		h.Fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "listings/edit", gin.H{
		"Title":   "Edit " + listing.Title,
		"Listing": listing,
	})
}

func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id", apperrors.ErrListingNotFound)
	if !ok {
		return
	}
	input, ok := h.BindListing(c)
	if !ok {
		return
	}
	if err := h.listingService.Update(c.Request.Context(), id, input); err != nil {
		h.Fail(c, err)
		return
	}
	h.Redirect(c, listingPath(id.Hex()))
}

func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id", apperrors.ErrListingNotFound)
	if !ok {
		return
	}
	if err := h.listingService.Delete(c.Request.Context(), id); err != nil {
		h.Fail(c, err)
		return
	}
	h.Redirect(c, "/listings")
}

func listingPath(id string) string {
	return "/listings/" + id
}
