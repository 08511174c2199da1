package transformers

import (
	"fmt"

	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/utils"
)

// InvoiceTransformer transforms invoice data between database and rest models
type InvoiceTransformer struct{}

// TransformToRest transforms an invoice database model into an invoice rest model
func (it InvoiceTransformer) TransformToRest(dbResource models.InvoiceDB) models.InvoiceRest {
	outstanding := dbResource.TotalAmount - dbResource.PaidAmount
	if outstanding < 0 {
		outstanding = 0
	}

	return models.InvoiceRest{
		ID:                dbResource.ID,
		StudentID:         dbResource.StudentID,
		Description:       dbResource.Description,
		AcademicYear:      dbResource.AcademicYear,
		TotalAmount:       utils.FormatAmount(dbResource.TotalAmount),
		PaidAmount:        utils.FormatAmount(dbResource.PaidAmount),
		OutstandingAmount: utils.FormatAmount(outstanding),
		Status:            dbResource.Status,
		DueDate:           dbResource.DueDate,
		CreatedAt:         dbResource.CreatedAt,
		PaidAt:            optionalTime(dbResource.PaidAt),
		PaidVia:           dbResource.PaidVia,
		Archived:          dbResource.Archived,
		Links: models.InvoiceLinksRest{
			Self:     fmt.Sprintf("/invoices/%s", dbResource.ID),
			Payments: fmt.Sprintf("/invoices/%s/payments", dbResource.ID),
		},
	}
}

// PaymentAttemptTransformer transforms payment attempt data between database and rest models
type PaymentAttemptTransformer struct{}

// TransformToRest transforms a payment attempt database model into a payment attempt rest model
func (pt PaymentAttemptTransformer) TransformToRest(dbResource models.PaymentAttemptDB) models.PaymentAttemptRest {
	return models.PaymentAttemptRest{
		ID:                   dbResource.ID,
		InvoiceID:            dbResource.InvoiceID,
		StudentID:            dbResource.StudentID,
		Amount:               utils.FormatAmount(dbResource.Amount),
		GatewayTransactionID: dbResource.GatewayTransactionID,
		NextURL:              dbResource.NextURL,
		Status:               dbResource.Status,
		CreatedAt:            dbResource.CreatedAt,
		CompletedAt:          optionalTime(dbResource.CompletedAt),
	}
}
