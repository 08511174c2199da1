package service

import (
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

// InvoiceService contains the DAO for invoice access
type InvoiceService struct {
	DAO    dao.DAO
	Config config.Config
}

// CreateInvoice creates a pending invoice for a student of the caller's tenant
func (service *InvoiceService) CreateInvoice(req *http.Request, caller models.Caller, request models.IncomingInvoiceRequest) (*models.InvoiceRest, ResponseType, error) {
	totalAmount, err := utils.ParseAmount(request.TotalAmount)
	if err != nil {
		return nil, InvalidData, err
	}
	if totalAmount <= 0 {
		return nil, InvalidData, fmt.Errorf("invoice total must be greater than zero")
	}

	invoice := models.InvoiceDB{
		ID:           uuid.NewString(),
		TenantID:     caller.TenantID,
		StudentID:    request.StudentID,
		Description:  request.Description,
		AcademicYear: request.AcademicYear,
		TotalAmount:  totalAmount,
		Status:       models.InvoicePending,
		DueDate:      request.DueDate,
		CreatedAt:    now(),
		CreatedBy:    caller.UserID,
	}

	err = service.DAO.CreateInvoice(&invoice)
	if err != nil {
		err = fmt.Errorf("error writing invoice to database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "invoice created", log.Data{"invoice_id": invoice.ID, "student_id": invoice.StudentID})

	rest := transformers.InvoiceTransformer{}.TransformToRest(invoice)
	return &rest, Success, nil
}

// GetInvoice gets an invoice of a tenant. If the invoice is not found, NotFound is returned
func (service *InvoiceService) GetInvoice(req *http.Request, tenantID, id string) (*models.InvoiceDB, ResponseType, error) {
	invoice, err := service.DAO.GetInvoice(tenantID, id)
	if err != nil {
		err = fmt.Errorf("error getting invoice from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if invoice == nil {
		return nil, NotFound, fmt.Errorf("invoice [%s] not found", id)
	}
	return invoice, Success, nil
}

// ListInvoices lists the invoices of the caller's tenant. Students only ever see their own.
func (service *InvoiceService) ListInvoices(req *http.Request, caller models.Caller, filter models.InvoiceFilter) (*models.InvoiceListRest, ResponseType, error) {
	if !caller.IsAdmin() {
		filter.StudentID = caller.UserID
	}

	switch filter.Status {
	case "", models.InvoicePending, models.InvoicePaid, models.InvoiceOverdue, models.InvoiceCancelled:
	default:
		return nil, InvalidData, fmt.Errorf("invoice status [%s] not recognised", filter.Status)
	}

	invoices, err := service.DAO.GetInvoices(caller.TenantID, filter)
	if err != nil {
		err = fmt.Errorf("error getting invoices from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	list := models.InvoiceListRest{Invoices: make([]models.InvoiceRest, 0, len(invoices))}
	for _, invoice := range invoices {
		list.Invoices = append(list.Invoices, transformers.InvoiceTransformer{}.TransformToRest(invoice))
	}
	list.Total = len(list.Invoices)

	return &list, Success, nil
}

// ArchiveInvoices archives the invoices of an academic year at rollover
func (service *InvoiceService) ArchiveInvoices(req *http.Request, tenantID, academicYear string) (*models.ArchiveInvoicesResponse, ResponseType, error) {
	archived, err := service.DAO.ArchiveInvoices(tenantID, academicYear)
	if err != nil {
		err = fmt.Errorf("error archiving invoices: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "invoices archived", log.Data{"academic_year": academicYear, "archived": archived})

	return &models.ArchiveInvoicesResponse{AcademicYear: academicYear, Archived: archived}, Success, nil
}
