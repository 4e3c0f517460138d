package services

import (
	"errors"

	"staynest/internal/repositories"
	"staynest/pkg/apperrors"
)

// mapStoreError translates repository sentinels into user-facing AppErrors.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrListingNotFound):
		return apperrors.ErrListingNotFound.WithError(err)
	case errors.Is(err, repositories.ErrReviewNotFound):
		return apperrors.ErrReviewNotFound.WithError(err)
	default:
		if _, ok := apperrors.AsAppError(err); ok {
			return err
		}
		return apperrors.DatabaseError(err)
	}
}
