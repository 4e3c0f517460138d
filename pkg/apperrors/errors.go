package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorCode string

// AppError carries the HTTP status and user-facing message of a failure.
type AppError struct {
	Code     ErrorCode
	Message  string
	Details  []string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError carrying the same code, so copies made by WithError still match.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.Code != "" && t.Code == e.Code
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithError returns a copy of e wrapping err. Predefined errors stay untouched.
func (e *AppError) WithError(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// AsAppError unwraps err down to the first *AppError in its chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ValidationError builds a 400 whose message is every field message joined with a comma.
func ValidationError(messages []string) *AppError {
	return &AppError{
		Code:     CodeValidationFailed,
		Message:  strings.Join(messages, ","),
		Details:  messages,
		HTTPCode: http.StatusBadRequest,
	}
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, DefaultMessage, http.StatusInternalServerError)
}

func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, DefaultMessage, http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}
