package models

import "time"

// DisputeDB is a student's claim that a payment succeeded, as stored in the DB
type DisputeDB struct {
	ID                   string    `bson:"_id"`
	TenantID             string    `bson:"tenant_id"`
	InvoiceID            string    `bson:"invoice_id"`
	PaymentAttemptID     string    `bson:"payment_attempt_id,omitempty"`
	TransactionReference string    `bson:"transaction_reference"`
	ClaimedAmount        int64     `bson:"claimed_amount"`
	Note                 string    `bson:"note"`
	Status               string    `bson:"status"`
	AdminNote            string    `bson:"admin_note,omitempty"`
	ResolvedBy           string    `bson:"resolved_by,omitempty"`
	ResolvedAt           time.Time `bson:"resolved_at,omitempty"`
	CreatedBy            string    `bson:"created_by"`
	CreatedAt            time.Time `bson:"created_at"`
}

// DisputeResolutionDB carries everything the store needs to apply a resolution in one transaction
type DisputeResolutionDB struct {
	Status           string
	AdminNote        string
	ResolvedBy       string
	ResolvedAt       time.Time
	InvoiceID        string
	PaymentAttemptID string
	PaidAmount       int64
}
