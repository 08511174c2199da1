package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// handleInvoicePaidMessage allows us to mock the call to produceInvoicePaidMessage for unit tests
var handleInvoicePaidMessage = produceInvoicePaidMessage

// HandleGatewayCallback handles the return from the gateway, settles the attempt and redirects the student
func HandleGatewayCallback(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["attempt_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment attempt id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	attempt, paid, responseType, err := paymentService.HandleGatewayCallback(req, id)
	if err != nil {
		writeServiceError(w, req, "error handling gateway callback", responseType, err)
		return
	}

	if paid {
		err = handleInvoicePaidMessage(*attempt, models.PaidViaCallback)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error producing invoice paid kafka message: [%v]", err))
			utils.WriteMessage(w, req, "error handling gateway callback", http.StatusInternalServerError)
			return
		}
	}

	redirectUser(w, req, attempt)
}

// redirectUser redirects the student to the invoice page of the fees web app with the attempt status
func redirectUser(w http.ResponseWriter, r *http.Request, attempt *models.PaymentAttemptDB) {
	query := url.Values{}
	query.Add("attempt", attempt.ID)
	query.Add("status", attempt.Status)

	generatedURL := fmt.Sprintf("%s/invoices/%s?%s", strings.TrimSuffix(paymentService.Config.PaymentsWebURL, "/"), attempt.InvoiceID, query.Encode())
	log.InfoR(r, "Redirecting to:", log.Data{"generated_url": generatedURL})

	http.Redirect(w, r, generatedURL, http.StatusSeeOther)
}
