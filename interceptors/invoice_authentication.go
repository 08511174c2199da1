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

// InvoiceAuthenticationInterceptor contains the invoice service used in the interceptor
type InvoiceAuthenticationInterceptor struct {
	Service service.InvoiceService
}

// InvoiceAuthenticationIntercept loads the invoice into the context when the caller is its student or a tenant admin
func (interceptor InvoiceAuthenticationInterceptor) InvoiceAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["invoice_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("InvoiceAuthenticationInterceptor error: no invoice id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		caller, ok := helpers.GetCaller(r)
		if !ok {
			log.ErrorR(r, fmt.Errorf("InvoiceAuthenticationInterceptor error: no caller in context"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		invoice, responseType, err := interceptor.Service.GetInvoice(r, caller.TenantID, id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("InvoiceAuthenticationInterceptor error when retrieving invoice: [%v]", err), log.Data{"service_response_type": responseType.String()})
			switch responseType {
			case service.NotFound:
				w.WriteHeader(http.StatusNotFound)
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		debugMap := log.Data{
			"invoice_id":     id,
			"user_id":        caller.UserID,
			"role":           caller.Role,
			"request_method": r.Method,
		}

		// Invoices of other tenants were already filtered out by the lookup
		switch {
		case invoice.StudentID == caller.UserID:
			log.InfoR(r, "InvoiceAuthenticationInterceptor authorised as invoice student", debugMap)
		case caller.IsAdmin():
			log.InfoR(r, "InvoiceAuthenticationInterceptor authorised as tenant admin", debugMap)
		default:
			log.InfoR(r, "InvoiceAuthenticationInterceptor unauthorised", debugMap)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyInvoice, invoice)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
