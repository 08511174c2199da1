package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/campusledger/fees.api/config"
	"github.com/campusledger/fees.api/dao"
	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/transformers"
	"github.com/campusledger/fees.api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
)

// DisputeService handles payment disputes raised by students and resolved by admins
type DisputeService struct {
	DAO    dao.DAO
	Config config.Config
}

// CreateDispute records an open dispute against an unpaid invoice of the caller's tenant.
// The claimed amount is not compared with the invoice total here.
func (service *DisputeService) CreateDispute(req *http.Request, caller models.Caller, request models.IncomingDisputeRequest) (*models.DisputeRest, ResponseType, error) {
	claimedAmount, err := utils.ParseAmount(request.ClaimedAmount)
	if err != nil {
		return nil, InvalidData, err
	}
	if claimedAmount <= 0 {
		return nil, InvalidData, fmt.Errorf("claimed amount must be greater than zero")
	}

	invoice, err := service.DAO.GetInvoice(caller.TenantID, request.InvoiceID)
	if err != nil {
		err = fmt.Errorf("error getting invoice from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if invoice == nil {
		return nil, NotFound, fmt.Errorf("invoice [%s] not found", request.InvoiceID)
	}
	if !caller.IsAdmin() && invoice.StudentID != caller.UserID {
		return nil, Forbidden, fmt.Errorf("invoice [%s] does not belong to caller", request.InvoiceID)
	}
	if invoice.Status == models.InvoicePaid {
		return nil, InvalidData, fmt.Errorf("invoice [%s] is already paid", request.InvoiceID)
	}

	dispute := models.DisputeDB{
		ID:                   uuid.NewString(),
		TenantID:             caller.TenantID,
		InvoiceID:            invoice.ID,
		TransactionReference: request.TransactionReference,
		ClaimedAmount:        claimedAmount,
		Note:                 request.Note,
		Status:               models.DisputeOpen,
		CreatedBy:            caller.UserID,
		CreatedAt:            now(),
	}

	err = service.DAO.CreateDispute(&dispute)
	if err != nil {
		err = fmt.Errorf("error writing dispute to database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "dispute created", log.Data{"dispute_id": dispute.ID, "invoice_id": dispute.InvoiceID})

	rest := transformers.DisputeTransformer{}.TransformToRest(dispute)
	return &rest, Success, nil
}

// GetDispute gets a dispute of the caller's tenant
func (service *DisputeService) GetDispute(req *http.Request, tenantID, id string) (*models.DisputeDB, ResponseType, error) {
	dispute, err := service.DAO.GetDispute(tenantID, id)
	if err != nil {
		err = fmt.Errorf("error getting dispute from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if dispute == nil {
		return nil, NotFound, fmt.Errorf("dispute [%s] not found", id)
	}
	return dispute, Success, nil
}

// ListDisputes gets the disputes of a tenant, optionally narrowed to a status
func (service *DisputeService) ListDisputes(req *http.Request, tenantID, status string) (*models.DisputeListRest, ResponseType, error) {
	switch status {
	case "", models.DisputeOpen, models.DisputeApproved, models.DisputeRejected:
	default:
		return nil, InvalidData, fmt.Errorf("dispute status [%s] not recognised", status)
	}

	disputes, err := service.DAO.GetDisputes(tenantID, status)
	if err != nil {
		err = fmt.Errorf("error getting disputes from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	list := transformers.DisputeTransformer{}.TransformListToRest(disputes)
	return &list, Success, nil
}

// ResolveDispute approves or rejects an open dispute.
// Approval requires a non-failed payment attempt on the invoice whose gateway transaction id is the
// dispute's reference and whose amount equals the claim. The dispute, invoice and attempt are then
// written in one transaction.
func (service *DisputeService) ResolveDispute(req *http.Request, caller models.Caller, id string, request models.ResolveDisputeRequest) (*models.DisputeRest, ResponseType, error) {
	dispute, responseType, err := service.GetDispute(req, caller.TenantID, id)
	if err != nil {
		return nil, responseType, err
	}
	if dispute.Status != models.DisputeOpen {
		return nil, Conflict, fmt.Errorf("dispute [%s] has already been %s", id, dispute.Status)
	}

	resolution := models.DisputeResolutionDB{
		AdminNote:  request.Note,
		ResolvedBy: caller.UserID,
		ResolvedAt: now(),
		InvoiceID:  dispute.InvoiceID,
	}

	switch request.Action {
	case models.ActionReject:
		resolution.Status = models.DisputeRejected
	case models.ActionApprove:
		attempt, responseType, err := service.matchPaymentAttempt(req, dispute)
		if err != nil {
			return nil, responseType, err
		}
		resolution.Status = models.DisputeApproved
		resolution.PaymentAttemptID = attempt.ID
		resolution.PaidAmount = dispute.ClaimedAmount
	default:
		return nil, InvalidData, fmt.Errorf("resolve action [%s] not recognised", request.Action)
	}

	err = service.DAO.ResolveDispute(caller.TenantID, id, resolution)
	if err != nil {
		if errors.Is(err, dao.ErrDisputeNotOpen) || errors.Is(err, dao.ErrInvoiceNotPayable) {
			return nil, Conflict, fmt.Errorf("error resolving dispute [%s]: [%v]", id, err)
		}
		if errors.Is(err, dao.ErrAttemptNotUsable) {
			return nil, AttemptNotFound, fmt.Errorf("error resolving dispute [%s]: [%v]", id, err)
		}
		err = fmt.Errorf("error resolving dispute on database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	dispute.Status = resolution.Status
	dispute.AdminNote = resolution.AdminNote
	dispute.ResolvedBy = resolution.ResolvedBy
	dispute.ResolvedAt = resolution.ResolvedAt
	dispute.PaymentAttemptID = resolution.PaymentAttemptID

	log.InfoR(req, "dispute resolved", log.Data{"dispute_id": id, "status": dispute.Status, "resolved_by": caller.UserID})

	rest := transformers.DisputeTransformer{}.TransformToRest(*dispute)
	return &rest, Success, nil
}

func (service *DisputeService) matchPaymentAttempt(req *http.Request, dispute *models.DisputeDB) (*models.PaymentAttemptDB, ResponseType, error) {
	attempt, err := service.DAO.GetPaymentAttemptByTransactionID(dispute.TenantID, dispute.InvoiceID, dispute.TransactionReference)
	if err != nil {
		err = fmt.Errorf("error getting payment attempt from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if attempt == nil || attempt.Status == models.AttemptFailed {
		return nil, AttemptNotFound, fmt.Errorf("no payment attempt for transaction [%s] on invoice [%s]", dispute.TransactionReference, dispute.InvoiceID)
	}
	if attempt.Amount != dispute.ClaimedAmount {
		return nil, AmountMismatch, fmt.Errorf("claimed amount [%s] does not match payment attempt amount [%s]",
			utils.FormatAmount(dispute.ClaimedAmount), utils.FormatAmount(attempt.Amount))
	}
	return attempt, Success, nil
}
