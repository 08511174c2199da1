package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campusledger/fees.api/helpers"
	"github.com/campusledger/fees.api/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// DisputeAuthenticationInterceptor contains the dispute service used in the interceptor
type DisputeAuthenticationInterceptor struct {
	Service service.DisputeService
}

// DisputeAuthenticationIntercept loads the dispute into the context when the caller raised it or is a tenant admin
func (interceptor DisputeAuthenticationInterceptor) DisputeAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["dispute_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("DisputeAuthenticationInterceptor error: no dispute id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		caller, ok := helpers.GetCaller(r)
		if !ok {
			log.ErrorR(r, fmt.Errorf("DisputeAuthenticationInterceptor error: no caller in context"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		dispute, responseType, err := interceptor.Service.GetDispute(r, caller.TenantID, id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("DisputeAuthenticationInterceptor error when retrieving dispute: [%v]", err), log.Data{"service_response_type": responseType.String()})
			switch responseType {
			case service.NotFound:
				w.WriteHeader(http.StatusNotFound)
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		if dispute.CreatedBy != caller.UserID && !caller.IsAdmin() {
			log.InfoR(r, "DisputeAuthenticationInterceptor unauthorised", log.Data{"dispute_id": id, "user_id": caller.UserID})
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyDispute, dispute)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
