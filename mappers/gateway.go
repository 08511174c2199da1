package mappers

import (
	"strings"

	"github.com/campusledger/fees.api/models"
)

// MapGatewayStateToAttemptStatus maps the state reported by the gateway onto a payment attempt status.
// Anything the gateway has not finished stays processing.
func MapGatewayStateToAttemptStatus(state models.State) string {
	switch strings.ToLower(state.Status) {
	case "success":
		return models.AttemptSuccess
	case "failed", "cancelled", "error":
		return models.AttemptFailed
	}
	if state.Finished {
		return models.AttemptFailed
	}
	return models.AttemptProcessing
}

// MapToPaymentAttempt builds the stored payment attempt for a transaction the gateway has just created
func MapToPaymentAttempt(id string, invoice models.InvoiceDB, amount int64, response models.IncomingGatewayResponse) models.PaymentAttemptDB {
	return models.PaymentAttemptDB{
		ID:                   id,
		TenantID:             invoice.TenantID,
		InvoiceID:            invoice.ID,
		StudentID:            invoice.StudentID,
		Amount:               amount,
		GatewayTransactionID: response.TransactionID,
		NextURL:              response.Links.NextURL.HREF,
		Status:               models.AttemptProcessing,
	}
}
