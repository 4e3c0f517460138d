package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorTemplate is the view rendered for every failure.
const ErrorTemplate = "error"

// Normalize extracts the (status, message) pair presented to the user.
// Errors outside the AppError taxonomy become 500; debug exposes their message.
func Normalize(err error, debug bool) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, DefaultMessage
	}

	if appErr, ok := AsAppError(err); ok {
		status := appErr.HTTPCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		message := appErr.Message
		if message == "" {
			message = DefaultMessage
		}
		if debug && status >= http.StatusInternalServerError && appErr.Err != nil {
			message = appErr.Err.Error()
		}
		return status, message
	}

	if debug && err.Error() != "" {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, DefaultMessage
}

// GinErrorHandler renders failures through the error template.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	status, message := Normalize(err, h.Debug)
	c.HTML(status, ErrorTemplate, gin.H{
		"StatusCode": status,
		"StatusText": http.StatusText(status),
		"Message":    message,
	})
}
