package dao

import (
	"time"

	"github.com/campusledger/fees.api/config"
	"github.com/campusledger/fees.api/models"
)

// DAO is an interface for accessing invoices, payment attempts and disputes from a backend store
type DAO interface {
	CreateInvoice(invoice *models.InvoiceDB) error
	GetInvoice(tenantID, id string) (*models.InvoiceDB, error)
	GetInvoices(tenantID string, filter models.InvoiceFilter) ([]models.InvoiceDB, error)
	MarkInvoicePaid(tenantID, id string, paidAmount int64, paidVia string, paidAt time.Time) error
	ArchiveInvoices(tenantID, academicYear string) (int64, error)

	CreatePaymentAttempt(attempt *models.PaymentAttemptDB) error
	GetPaymentAttempt(tenantID, id string) (*models.PaymentAttemptDB, error)
	GetPaymentAttemptByID(id string) (*models.PaymentAttemptDB, error)
	GetPaymentAttemptByTransactionID(tenantID, invoiceID, transactionID string) (*models.PaymentAttemptDB, error)
	UpdatePaymentAttemptStatus(tenantID, id, status string, completedAt time.Time) error
	GetStuckPaymentAttempts(tenantID string, cutoff time.Time) ([]models.PaymentAttemptDB, error)
	GetDailyCollections(tenantID string, from, to time.Time) ([]models.DailyCollectionDB, error)

	CreateDispute(dispute *models.DisputeDB) error
	GetDispute(tenantID, id string) (*models.DisputeDB, error)
	GetDisputes(tenantID, status string) ([]models.DisputeDB, error)
	ResolveDispute(tenantID, id string, resolution models.DisputeResolutionDB) error
}

// NewDAO will create a new instance of the DAO interface.
func NewDAO(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                 database,
		InvoicesCollection: cfg.InvoicesCollection,
		AttemptsCollection: cfg.AttemptsCollection,
		DisputesCollection: cfg.DisputesCollection,
	}
}
