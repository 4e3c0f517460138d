package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"staynest/internal/dto"
	"staynest/internal/logger"
	"staynest/internal/validator"
	"staynest/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// ReadBody decodes the request payload into a Body according to its content type.
// Anything that is not JSON is treated as a form post.
func (h *BaseHandler) ReadBody(c *gin.Context) (dto.Body, bool) {
	ctx := c.Request.Context()

	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		body, err := dto.ParseJSON(c.Request.Body)
		if err != nil {
			logger.CtxWarn(ctx, "Failed to decode JSON body", "error", err, "path", c.Request.URL.Path)
			h.Fail(c, apperrors.NewBadRequestError(err.Error()))
			return nil, false
		}
		return body, true
	}

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			logger.CtxWarn(ctx, "Failed to parse multipart form", "error", err, "path", c.Request.URL.Path)
			h.Fail(c, apperrors.NewBadRequestError(err.Error()))
			return nil, false
		}
	} else if err := c.Request.ParseForm(); err != nil {
		logger.CtxWarn(ctx, "Failed to parse form", "error", err, "path", c.Request.URL.Path)
		h.Fail(c, apperrors.NewBadRequestError(err.Error()))
		return nil, false
	}
	return dto.ParseForm(c.Request.PostForm), true
}

// BindListing reads the body and runs the listing checks. It reports the failure itself.
func (h *BaseHandler) BindListing(c *gin.Context) (*dto.ListingInput, bool) {
	body, ok := h.ReadBody(c)
	if !ok {
		return nil, false
	}
	input, errs := h.validator.ValidateListing(body)
	if !errs.Valid() {
		logger.CtxWarn(c.Request.Context(), "Validation failed", "errors", errs.Messages(), "path", c.Request.URL.Path)
		h.Fail(c, errs.Err())
		return nil, false
	}
	return input, true
}

func (h *BaseHandler) BindReview(c *gin.Context) (*dto.ReviewInput, bool) {
	body, ok := h.ReadBody(c)
	if !ok {
		return nil, false
	}
	input, errs := h.validator.ValidateReview(body)
	if !errs.Valid() {
		logger.CtxWarn(c.Request.Context(), "Validation failed", "errors", errs.Messages(), "path", c.Request.URL.Path)
		h.Fail(c, errs.Err())
		return nil, false
	}
	return input, true
}

// ParseID reads an ObjectID path parameter. Malformed ids answer with notFound.
func (h *BaseHandler) ParseID(c *gin.Context, param string, notFound *apperrors.AppError) (primitive.ObjectID, bool) {
	raw := c.Param(param)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		logger.CtxDebug(c.Request.Context(), "Malformed id", "param", param, "value", raw)
		h.Fail(c, notFound.WithError(err))
		return primitive.NilObjectID, false
	}
	return id, true
}

// Fail hands err to the error middleware and stops the chain.
func (h *BaseHandler) Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func (h *BaseHandler) Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
