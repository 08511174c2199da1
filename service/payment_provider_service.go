package service

import (
	"github.com/campusledger/fees.api/models"
)

// PaymentProviderService is an interface for all the requests to the external payment gateway
type PaymentProviderService interface {
	CreateTransaction(attemptID string, invoice *models.InvoiceDB, amount int64) (*models.IncomingGatewayResponse, ResponseType, error)
	CheckTransactionStatus(transactionID string) (*models.StatusResponse, ResponseType, error)
}
