package fixtures

import (
	"time"

	"github.com/campusledger/fees.api/models"
)

const (
	TenantID  = "tenant-1"
	StudentID = "student-1"
	AdminID   = "admin-1"
)

// GetInvoice returns a pending 5000.00 invoice
func GetInvoice(id string) *models.InvoiceDB {
	return &models.InvoiceDB{
		ID:           id,
		TenantID:     TenantID,
		StudentID:    StudentID,
		Description:  "Term 1 tuition",
		AcademicYear: "2025/2026",
		TotalAmount:  500000,
		Status:       models.InvoicePending,
		DueDate:      time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
		CreatedBy:    AdminID,
	}
}

// GetPaymentAttempt returns a processing attempt on the invoice created at the given time
func GetPaymentAttempt(id, invoiceID string, amount int64, createdAt time.Time) *models.PaymentAttemptDB {
	return &models.PaymentAttemptDB{
		ID:                   id,
		TenantID:             TenantID,
		InvoiceID:            invoiceID,
		StudentID:            StudentID,
		Amount:               amount,
		GatewayTransactionID: "gw-" + id,
		NextURL:              "http://gateway/pay/gw-" + id,
		Status:               models.AttemptProcessing,
		CreatedAt:            createdAt,
	}
}

// GetDispute returns an open dispute on the invoice claiming the given amount
func GetDispute(id, invoiceID, transactionReference string, claimedAmount int64) *models.DisputeDB {
	return &models.DisputeDB{
		ID:                   id,
		TenantID:             TenantID,
		InvoiceID:            invoiceID,
		TransactionReference: transactionReference,
		ClaimedAmount:        claimedAmount,
		Note:                 "Paid through the gateway but the invoice still shows pending",
		Status:               models.DisputeOpen,
		CreatedBy:            StudentID,
		CreatedAt:            time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC),
	}
}

// GetStudentCaller returns the caller of a student request
func GetStudentCaller() models.Caller {
	return models.Caller{TenantID: TenantID, UserID: StudentID, Role: models.RoleStudent, Email: "student@school.example"}
}

// GetAdminCaller returns the caller of an admin request
func GetAdminCaller() models.Caller {
	return models.Caller{TenantID: TenantID, UserID: AdminID, Role: models.RoleAdmin, Email: "bursar@school.example"}
}
