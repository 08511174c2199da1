package handlers

import (
	"context"
	"net/http"

	"github.com/campusledger/fees.api/config"
	"github.com/campusledger/fees.api/dao"
	"github.com/campusledger/fees.api/interceptors"
	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var invoiceService *service.InvoiceService
var paymentService *service.PaymentService
var disputeService *service.DisputeService
var reconciliationService *service.ReconciliationService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config, d dao.DAO) {
	gateway := &service.GatewayService{Config: cfg}

	invoiceService = &service.InvoiceService{
		DAO:    d,
		Config: cfg,
	}

	paymentService = &service.PaymentService{
		DAO:     d,
		Config:  cfg,
		Gateway: gateway,
	}

	disputeService = &service.DisputeService{
		DAO:    d,
		Config: cfg,
	}

	reconciliationService = &service.ReconciliationService{
		DAO:     d,
		Config:  cfg,
		Gateway: gateway,
		InvoicePaid: func(attempt models.PaymentAttemptDB) error {
			return handleInvoicePaidMessage(attempt, models.PaidViaReconcile)
		},
	}

	bearer := &interceptors.BearerAuthenticationInterceptor{
		Secret: []byte(cfg.JWTSecret),
	}

	ia := &interceptors.InvoiceAuthenticationInterceptor{
		Service: *invoiceService,
	}

	da := &interceptors.DisputeAuthenticationInterceptor{
		Service: *disputeService,
	}

	admin := func(h http.HandlerFunc) http.Handler {
		return interceptors.AdminAuthenticationIntercept(h)
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Subrouters are split so each group gets its own middleware. Everything except /callback needs a bearer token.
	invoicesRouter := mainRouter.PathPrefix("/invoices").Subrouter()
	invoicesRouter.Handle("", admin(HandleCreateInvoice)).Methods("POST").Name("create-invoice")
	invoicesRouter.HandleFunc("", HandleGetInvoices).Methods("GET").Name("get-invoices")
	invoicesRouter.Handle("/archive", admin(HandleArchiveInvoices)).Methods("POST").Name("archive-invoices")

	// invoice endpoints need the invoice loaded and its access checked
	invoiceRouter := invoicesRouter.PathPrefix("/{invoice_id}").Subrouter()
	invoiceRouter.HandleFunc("", HandleGetInvoice).Methods("GET").Name("get-invoice")
	invoiceRouter.HandleFunc("/payments", HandleInitiatePayment).Methods("POST").Name("create-payment")

	paymentsRouter := mainRouter.PathPrefix("/payments").Subrouter()
	paymentsRouter.HandleFunc("/stuck", HandleGetStuckPayments).Methods("GET").Name("get-stuck-payments")

	feesRouter := mainRouter.PathPrefix("/fees").Subrouter()
	feesRouter.HandleFunc("/collections/daily", HandleGetDailyCollections).Methods("GET").Name("get-daily-collections")

	disputesRouter := mainRouter.PathPrefix("/disputes").Subrouter()
	disputesRouter.HandleFunc("", HandleCreateDispute).Methods("POST").Name("create-dispute")
	disputesRouter.Handle("", admin(HandleGetDisputes)).Methods("GET").Name("get-disputes")

	disputeRouter := disputesRouter.PathPrefix("/{dispute_id}").Subrouter()
	disputeRouter.HandleFunc("", HandleGetDispute).Methods("GET").Name("get-dispute")
	disputeRouter.Handle("/resolve", admin(HandleResolveDispute)).Methods("POST").Name("resolve-dispute")

	// callback endpoints are called by the gateway redirect and carry no bearer token
	callbackRouter := mainRouter.PathPrefix("/callback").Subrouter()
	callbackRouter.HandleFunc("/payments/{attempt_id}", HandleGatewayCallback).Methods("GET").Name("handle-gateway-callback")

	// Set middleware for subrouters
	invoicesRouter.Use(log.Handler, bearer.BearerAuthenticationIntercept)
	invoiceRouter.Use(ia.InvoiceAuthenticationIntercept)
	paymentsRouter.Use(log.Handler, bearer.BearerAuthenticationIntercept, interceptors.AdminAuthenticationIntercept)
	feesRouter.Use(log.Handler, bearer.BearerAuthenticationIntercept, interceptors.AdminAuthenticationIntercept)
	disputesRouter.Use(log.Handler, bearer.BearerAuthenticationIntercept)
	disputeRouter.Use(da.DisputeAuthenticationIntercept)
	callbackRouter.Use(log.Handler)
}

// StartStuckPaymentMonitor runs the stuck payment monitor until ctx is cancelled. Register must be called first.
// The returned channel is closed once the monitor has stopped, immediately if polling is disabled.
func StartStuckPaymentMonitor(ctx context.Context, cfg config.Config) <-chan struct{} {
	done := make(chan struct{})
	if cfg.StuckPaymentPollInterval() <= 0 {
		log.Info("stuck payment monitor disabled")
		close(done)
		return done
	}

	monitor := &service.StuckPaymentMonitor{
		Service:  reconciliationService,
		Interval: cfg.StuckPaymentPollInterval(),
	}

	go func() {
		defer close(done)
		monitor.Run(ctx)
	}()
	return done
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
