package contextkeys

// contextKey keeps values stored by this module from colliding with other packages.
type contextKey string

// RequestIDContextKey holds the id assigned to the current HTTP request.
const RequestIDContextKey = contextKey("request_id")
