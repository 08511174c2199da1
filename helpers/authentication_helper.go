package helpers

import (
	"net/http"
	"strings"

	"github.com/campusledger/fees.api/models"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// GetBearerToken returns the token of a bearer Authorization header, or "" if there is none
func GetBearerToken(r *http.Request) string {
	header := r.Header.Get(authorizationHeader)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// GetCaller returns the caller stored in the request context by the bearer interceptor
func GetCaller(r *http.Request) (models.Caller, bool) {
	caller, ok := r.Context().Value(ContextKeyCaller).(models.Caller)
	return caller, ok
}
