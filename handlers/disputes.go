package handlers

import (
	"fmt"
	"net/http"

	"github.com/campusledger/fees.api/helpers"
	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/transformers"
	"github.com/campusledger/fees.api/utils"
	"github.com/companieshouse/chs.go/log"
)

// handleDisputeMessage allows us to mock the call to produceDisputeMessage for unit tests
var handleDisputeMessage = produceDisputeMessage

// HandleCreateDispute raises a dispute against an unpaid invoice
func HandleCreateDispute(w http.ResponseWriter, req *http.Request) {
	caller, ok := helpers.GetCaller(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("caller not in request context"))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var request models.IncomingDisputeRequest
	if err := utils.DecodeJSONBody(req, &request); err != nil {
		log.ErrorR(req, err)
		utils.WriteMessage(w, req, err.Error(), http.StatusBadRequest)
		return
	}

	if err := utils.NewValidator().Struct(request); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid request: [%v]", err))
		utils.WriteMessage(w, req, err.Error(), http.StatusBadRequest)
		return
	}

	dispute, responseType, err := disputeService.CreateDispute(req, caller, request)
	if err != nil {
		writeServiceError(w, req, "error creating dispute", responseType, err)
		return
	}

	w.Header().Set("Location", dispute.Links.Self)
	utils.WriteJSONWithStatus(w, req, dispute, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new dispute", log.Data{"dispute_id": dispute.ID, "status": http.StatusCreated})
}

// HandleGetDisputes lists the tenant's disputes, polled by admin sessions
func HandleGetDisputes(w http.ResponseWriter, req *http.Request) {
	caller, _ := helpers.GetCaller(req)

	disputes, responseType, err := disputeService.ListDisputes(req, caller.TenantID, req.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, req, "error listing disputes", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, disputes, http.StatusOK)
}

// HandleGetDispute returns the dispute loaded by the dispute interceptor
func HandleGetDispute(w http.ResponseWriter, req *http.Request) {
	dispute, ok := req.Context().Value(helpers.ContextKeyDispute).(*models.DisputeDB)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid dispute in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, transformers.DisputeTransformer{}.TransformToRest(*dispute), http.StatusOK)
}

// HandleResolveDispute approves or rejects an open dispute
func HandleResolveDispute(w http.ResponseWriter, req *http.Request) {
	caller, _ := helpers.GetCaller(req)

	dispute, ok := req.Context().Value(helpers.ContextKeyDispute).(*models.DisputeDB)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid dispute in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var request models.ResolveDisputeRequest
	if err := utils.DecodeJSONBody(req, &request); err != nil {
		log.ErrorR(req, err)
		utils.WriteMessage(w, req, err.Error(), http.StatusBadRequest)
		return
	}

	if err := utils.NewValidator().Struct(request); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid request: [%v]", err))
		utils.WriteMessage(w, req, err.Error(), http.StatusBadRequest)
		return
	}

	resolved, responseType, err := disputeService.ResolveDispute(req, caller, dispute.ID, request)
	if err != nil {
		writeServiceError(w, req, "error resolving dispute", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, resolved, http.StatusOK)

	log.InfoR(req, "Successful POST request to resolve dispute", log.Data{"dispute_id": resolved.ID, "status": resolved.Status})

	err = handleDisputeMessage(*resolved, caller.TenantID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing dispute resolved kafka message: [%v]", err))
	}

	if resolved.Status == models.DisputeApproved {
		attempt := models.PaymentAttemptDB{ID: resolved.PaymentAttemptID, TenantID: caller.TenantID, InvoiceID: resolved.InvoiceID}
		err = handleInvoicePaidMessage(attempt, models.PaidViaDispute)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error producing invoice paid kafka message: [%v]", err))
		}
	}
}
