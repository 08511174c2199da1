package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/campusledger/fees.api/helpers"
	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/transformers"
	"github.com/campusledger/fees.api/utils"
	"github.com/companieshouse/chs.go/log"
)

// HandleCreateInvoice creates an invoice for a student of the admin's tenant
func HandleCreateInvoice(w http.ResponseWriter, req *http.Request) {
	caller, ok := helpers.GetCaller(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("caller not in request context"))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var request models.IncomingInvoiceRequest
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

	invoice, responseType, err := invoiceService.CreateInvoice(req, caller, request)
	if err != nil {
		writeServiceError(w, req, "error creating invoice", responseType, err)
		return
	}

	w.Header().Set("Location", invoice.Links.Self)
	utils.WriteJSONWithStatus(w, req, invoice, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new invoice", log.Data{"invoice_id": invoice.ID, "status": http.StatusCreated})
}

// HandleGetInvoices lists invoices. Students only ever receive their own.
func HandleGetInvoices(w http.ResponseWriter, req *http.Request) {
	caller, ok := helpers.GetCaller(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("caller not in request context"))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	query := req.URL.Query()
	filter := models.InvoiceFilter{
		StudentID:    query.Get("student_id"),
		Status:       query.Get("status"),
		AcademicYear: query.Get("academic_year"),
	}
	if v := query.Get("include_archived"); v != "" {
		includeArchived, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteMessage(w, req, fmt.Sprintf("include_archived [%s] is not a boolean", v), http.StatusBadRequest)
			return
		}
		filter.IncludeArchived = includeArchived
	}

	invoices, responseType, err := invoiceService.ListInvoices(req, caller, filter)
	if err != nil {
		writeServiceError(w, req, "error listing invoices", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, invoices, http.StatusOK)
}

// HandleGetInvoice returns the invoice loaded by the invoice interceptor
func HandleGetInvoice(w http.ResponseWriter, req *http.Request) {
	invoice, ok := req.Context().Value(helpers.ContextKeyInvoice).(*models.InvoiceDB)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid invoice in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, transformers.InvoiceTransformer{}.TransformToRest(*invoice), http.StatusOK)

	log.InfoR(req, "Successful GET request for invoice", log.Data{"invoice_id": invoice.ID})
}

// HandleArchiveInvoices archives every invoice of an academic year at rollover
func HandleArchiveInvoices(w http.ResponseWriter, req *http.Request) {
	caller, ok := helpers.GetCaller(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("caller not in request context"))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var request models.ArchiveInvoicesRequest
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

	archived, responseType, err := invoiceService.ArchiveInvoices(req, caller.TenantID, request.AcademicYear)
	if err != nil {
		writeServiceError(w, req, "error archiving invoices", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, archived, http.StatusOK)
}
