package apperrors

// Error codes grouped by domain
const (
	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Resources
	CodePageNotFound    ErrorCode = "PAGE_NOT_FOUND"
	CodeListingNotFound ErrorCode = "LISTING_NOT_FOUND"
	CodeReviewNotFound  ErrorCode = "REVIEW_NOT_FOUND"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
