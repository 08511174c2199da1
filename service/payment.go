package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/campusledger/fees.api/config"
	"github.com/campusledger/fees.api/dao"
	"github.com/campusledger/fees.api/mappers"
	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/transformers"
	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
)

// PaymentService contains the DAO for db access and the gateway the attempts are made through
type PaymentService struct {
	DAO     dao.DAO
	Config  config.Config
	Gateway PaymentProviderService
}

// InitiatePayment starts a gateway transaction for the outstanding balance of the invoice and stores a processing attempt
func (service *PaymentService) InitiatePayment(req *http.Request, invoice *models.InvoiceDB) (*models.PaymentAttemptRest, ResponseType, error) {
	switch invoice.Status {
	case models.InvoicePaid:
		return nil, InvalidData, fmt.Errorf("invoice [%s] is already paid", invoice.ID)
	case models.InvoiceCancelled:
		return nil, InvalidData, fmt.Errorf("invoice [%s] is cancelled", invoice.ID)
	}

	amount := invoice.TotalAmount - invoice.PaidAmount
	if amount <= 0 {
		return nil, InvalidData, fmt.Errorf("invoice [%s] has nothing outstanding", invoice.ID)
	}

	id := uuid.NewString()

	gatewayResponse, responseType, err := service.Gateway.CreateTransaction(id, invoice, amount)
	if err != nil {
		err = fmt.Errorf("error creating transaction with gateway: [%v]", err)
		log.ErrorR(req, err)
		return nil, responseType, err
	}

	attempt := mappers.MapToPaymentAttempt(id, *invoice, amount, *gatewayResponse)
	attempt.CreatedAt = now()

	err = service.DAO.CreatePaymentAttempt(&attempt)
	if err != nil {
		err = fmt.Errorf("error writing payment attempt to database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "payment attempt created", log.Data{"attempt_id": attempt.ID, "invoice_id": invoice.ID, "gateway_transaction_id": attempt.GatewayTransactionID})

	rest := transformers.PaymentAttemptTransformer{}.TransformToRest(attempt)
	return &rest, Success, nil
}

// HandleGatewayCallback makes a processing attempt terminal from the state the gateway reports for it.
// The returned bool is true when this call marked the invoice paid.
func (service *PaymentService) HandleGatewayCallback(req *http.Request, attemptID string) (*models.PaymentAttemptDB, bool, ResponseType, error) {
	attempt, err := service.DAO.GetPaymentAttemptByID(attemptID)
	if err != nil {
		err = fmt.Errorf("error getting payment attempt from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, false, Error, err
	}
	if attempt == nil {
		return nil, false, NotFound, fmt.Errorf("payment attempt [%s] not found", attemptID)
	}

	if attempt.Status != models.AttemptProcessing {
		log.InfoR(req, "payment attempt already terminal", log.Data{"attempt_id": attempt.ID, "status": attempt.Status})
		return attempt, false, Success, nil
	}

	statusResponse, responseType, err := service.Gateway.CheckTransactionStatus(attempt.GatewayTransactionID)
	if err != nil {
		err = fmt.Errorf("error getting transaction status from gateway: [%v]", err)
		log.ErrorR(req, err)
		return nil, false, responseType, err
	}

	paid, err := settleAttempt(service.DAO, attempt, statusResponse.Status, models.PaidViaCallback)
	if err != nil {
		if errors.Is(err, dao.ErrAttemptNotProcessing) {
			return nil, false, Conflict, err
		}
		err = fmt.Errorf("error settling payment attempt: [%v]", err)
		log.ErrorR(req, err)
		return nil, false, Error, err
	}

	log.InfoR(req, "payment attempt settled from callback", log.Data{"attempt_id": attempt.ID, "status": attempt.Status, "invoice_paid": paid})

	return attempt, paid, Success, nil
}

// settleAttempt moves a processing attempt to a terminal status and, on success, marks its invoice paid.
// It reports whether the invoice was marked paid by this call. An invoice already paid through another
// path leaves the attempt successful and the invoice untouched.
func settleAttempt(d dao.DAO, attempt *models.PaymentAttemptDB, status, paidVia string) (bool, error) {
	if status == models.AttemptProcessing {
		return false, nil
	}

	completedAt := now()
	err := d.UpdatePaymentAttemptStatus(attempt.TenantID, attempt.ID, status, completedAt)
	if err != nil {
		return false, err
	}
	attempt.Status = status
	attempt.CompletedAt = completedAt

	if status != models.AttemptSuccess {
		return false, nil
	}

	err = d.MarkInvoicePaid(attempt.TenantID, attempt.InvoiceID, attempt.Amount, paidVia, completedAt)
	if errors.Is(err, dao.ErrInvoiceNotPayable) {
		log.Info("invoice already paid, attempt recorded as successful", log.Data{"attempt_id": attempt.ID, "invoice_id": attempt.InvoiceID})
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error marking invoice paid: [%v]", err)
	}

	return true, nil
}
