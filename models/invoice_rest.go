package models

import "time"

// IncomingInvoiceRequest is the data received in the body of a create invoice request
type IncomingInvoiceRequest struct {
	StudentID    string    `json:"student_id"    validate:"required"`
	Description  string    `json:"description"   validate:"required"`
	AcademicYear string    `json:"academic_year" validate:"required"`
	TotalAmount  string    `json:"total_amount"  validate:"required,amount"`
	DueDate      time.Time `json:"due_date"      validate:"required"`
}

// ArchiveInvoicesRequest is the body of an academic year rollover request
type ArchiveInvoicesRequest struct {
	AcademicYear string `json:"academic_year" validate:"required"`
}

// ArchiveInvoicesResponse reports how many invoices a rollover archived
type ArchiveInvoicesResponse struct {
	AcademicYear string `json:"academic_year"`
	Archived     int64  `json:"archived"`
}

// InvoiceRest is public facing invoice details to be returned in the response
type InvoiceRest struct {
	ID                string           `json:"id"`
	StudentID         string           `json:"student_id"`
	Description       string           `json:"description"`
	AcademicYear      string           `json:"academic_year"`
	TotalAmount       string           `json:"total_amount"`
	PaidAmount        string           `json:"paid_amount"`
	OutstandingAmount string           `json:"outstanding_amount"`
	Status            string           `json:"status"`
	DueDate           time.Time        `json:"due_date"`
	CreatedAt         time.Time        `json:"created_at"`
	PaidAt            *time.Time       `json:"paid_at,omitempty"`
	PaidVia           string           `json:"paid_via,omitempty"`
	Archived          bool             `json:"archived"`
	Links             InvoiceLinksRest `json:"links"`
}

// InvoiceLinksRest is a set of URLs related to the invoice, including self
type InvoiceLinksRest struct {
	Self     string `json:"self"`
	Payments string `json:"payments"`
}

// InvoiceListRest is the response body for a list of invoices
type InvoiceListRest struct {
	Total    int           `json:"total"`
	Invoices []InvoiceRest `json:"invoices"`
}
