package interceptors

import (
	"fmt"
	"net/http"

	"github.com/campusledger/fees.api/helpers"
	"github.com/companieshouse/chs.go/log"
)

// AdminAuthenticationIntercept only lets tenant admins through. It must run after the bearer interceptor.
func AdminAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := helpers.GetCaller(r)
		if !ok {
			log.ErrorR(r, fmt.Errorf("AdminAuthenticationIntercept error: no caller in context"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if !caller.IsAdmin() {
			log.InfoR(r, "AdminAuthenticationIntercept forbidden: caller is not an admin", log.Data{"user_id": caller.UserID, "role": caller.Role})
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
