package apperrors

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name       string
		err        error
		debug      bool
		wantStatus int
		wantMsg    string
	}{
		{"page not found", ErrPageNotFound, false, http.StatusNotFound, "Page not found!"},
		{"wrapped not found", fmt.Errorf("svc: %w", ErrListingNotFound), false, http.StatusNotFound, "Listing not found"},
		{"validation", ValidationError([]string{`"a" is required`, `"b" is required`}), false, http.StatusBadRequest, `"a" is required,"b" is required`},
		{"plain error", dbErr, false, http.StatusInternalServerError, DefaultMessage},
		{"plain error debug", dbErr, true, http.StatusInternalServerError, "connection refused"},
		{"database error", DatabaseError(dbErr), false, http.StatusInternalServerError, DefaultMessage},
		{"database error debug", DatabaseError(dbErr), true, http.StatusInternalServerError, "connection refused"},
		{"no status", &AppError{Message: "odd"}, false, http.StatusInternalServerError, "odd"},
		{"no message", &AppError{HTTPCode: http.StatusTeapot}, false, http.StatusTeapot, DefaultMessage},
		{"nil", nil, false, http.StatusInternalServerError, DefaultMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Normalize(tt.err, tt.debug)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestWithError_DoesNotMutate(t *testing.T) {
	cause := errors.New("bad hex")

	wrapped := ErrListingNotFound.WithError(cause)

	assert.Nil(t, ErrListingNotFound.Err)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, ErrListingNotFound.Code, wrapped.Code)
}

func TestGinErrorHandler_RendersTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	tmpl := `{{define "error"}}{{.StatusCode}}|{{.StatusText}}|{{.Message}}{{end}}`
	engine.SetHTMLTemplate(mustTemplate(t, tmpl))
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h := &GinErrorHandler{}
	h.HandleGinError(c, ErrReviewNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "404|Not Found|Review not found", w.Body.String())
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(fmt.Errorf("outer: %w", ErrPageNotFound))
	require.True(t, ok)
	assert.Equal(t, CodePageNotFound, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func mustTemplate(t *testing.T, text string) *template.Template {
	t.Helper()
	tmpl, err := template.New("").Parse(text)
	require.NoError(t, err)
	return tmpl
}

func TestIs_MatchesByCode(t *testing.T) {
	copied := ErrListingNotFound.WithError(errors.New("no documents"))

	assert.ErrorIs(t, copied, ErrListingNotFound)
	assert.ErrorIs(t, fmt.Errorf("wrap: %w", copied), ErrListingNotFound)
	assert.NotErrorIs(t, copied, ErrReviewNotFound)
}
