package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/campusledger/fees.api/helpers"
	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/service"
	"github.com/campusledger/fees.api/utils"
	"github.com/companieshouse/chs.go/log"
)

// HandleInitiatePayment starts a gateway payment for the invoice loaded by the invoice interceptor
func HandleInitiatePayment(w http.ResponseWriter, req *http.Request) {
	invoice, ok := req.Context().Value(helpers.ContextKeyInvoice).(*models.InvoiceDB)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid invoice in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Admins may view any invoice of their tenant but only its student pays it
	caller, _ := helpers.GetCaller(req)
	if caller.UserID != invoice.StudentID {
		log.InfoR(req, "payment initiation forbidden for non owner", log.Data{"invoice_id": invoice.ID, "user_id": caller.UserID})
		utils.WriteMessage(w, req, "only the invoice's student can pay it", http.StatusForbidden)
		return
	}

	attempt, responseType, err := paymentService.InitiatePayment(req, invoice)
	if err != nil {
		writeServiceError(w, req, "error initiating payment", responseType, err)
		return
	}

	w.Header().Set("Location", attempt.NextURL)
	utils.WriteJSONWithStatus(w, req, attempt, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new payment attempt", log.Data{"attempt_id": attempt.ID, "invoice_id": invoice.ID, "status": http.StatusCreated})
}

// HandleGetStuckPayments lists the tenant's payment attempts that have been processing for longer than the threshold
func HandleGetStuckPayments(w http.ResponseWriter, req *http.Request) {
	caller, _ := helpers.GetCaller(req)

	stuck, responseType, err := reconciliationService.GetStuckPayments(req, caller.TenantID)
	if err != nil {
		writeServiceError(w, req, "error getting stuck payments", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, stuck, http.StatusOK)
}

// HandleGetDailyCollections reports the fees collected per day. The range defaults to the configured number of days up to today.
func HandleGetDailyCollections(w http.ResponseWriter, req *http.Request) {
	caller, _ := helpers.GetCaller(req)

	days := reconciliationService.Config.CollectionsDefaultDays
	if days < 1 {
		days = 1
	}
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -(days - 1))

	query := req.URL.Query()
	var err error
	if v := query.Get("from"); v != "" {
		if from, err = time.Parse(service.DateLayout, v); err != nil {
			utils.WriteMessage(w, req, fmt.Sprintf("from [%s] is not a date", v), http.StatusBadRequest)
			return
		}
	}
	if v := query.Get("to"); v != "" {
		if to, err = time.Parse(service.DateLayout, v); err != nil {
			utils.WriteMessage(w, req, fmt.Sprintf("to [%s] is not a date", v), http.StatusBadRequest)
			return
		}
	}

	collections, responseType, err := reconciliationService.GetDailyCollections(req, caller.TenantID, from, to)
	if err != nil {
		writeServiceError(w, req, "error getting daily collections", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, collections, http.StatusOK)
}
