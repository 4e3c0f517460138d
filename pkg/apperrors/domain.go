package apperrors

import "net/http"

// DefaultMessage is shown for failures that carry no message of their own.
const DefaultMessage = "Something went wrong"

var (
	ErrPageNotFound    = New(CodePageNotFound, "Page not found!", http.StatusNotFound)
	ErrListingNotFound = New(CodeListingNotFound, "Listing not found", http.StatusNotFound)
	ErrReviewNotFound  = New(CodeReviewNotFound, "Review not found", http.StatusNotFound)
)
