package middleware

import (
	"net/http"
	"strings"

	"staynest/internal/dto"
)

// MethodOverride lets HTML forms reach PUT and DELETE routes.
// A POST carrying ?_method= or a _method form field is rewritten before routing.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if method, ok := overrideMethod(r); ok {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}

// multipartMemory matches gin's default MaxMultipartMemory.
const multipartMemory = 32 << 20

func overrideMethod(r *http.Request) (string, bool) {
	method := r.URL.Query().Get(dto.MethodOverrideField)
	if method == "" {
		method = formMethod(r)
	}

	switch method = strings.ToUpper(strings.TrimSpace(method)); method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return method, true
	default:
		return "", false
	}
}

// formMethod reads _method from a urlencoded or multipart body. Parsed values stay on r for the handler.
func formMethod(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return ""
		}
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return ""
		}
	default:
		return ""
	}
	return r.PostForm.Get(dto.MethodOverrideField)
}
