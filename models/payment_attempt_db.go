package models

import "time"

// PaymentAttemptDB is one gateway transaction initiation against an invoice
type PaymentAttemptDB struct {
	ID                   string    `bson:"_id"`
	TenantID             string    `bson:"tenant_id"`
	InvoiceID            string    `bson:"invoice_id"`
	StudentID            string    `bson:"student_id"`
	Amount               int64     `bson:"amount"`
	GatewayTransactionID string    `bson:"gateway_transaction_id"`
	NextURL              string    `bson:"next_url"`
	Status               string    `bson:"status"`
	CreatedAt            time.Time `bson:"created_at"`
	CompletedAt          time.Time `bson:"completed_at,omitempty"`
}

// DailyCollectionDB is one row of the daily collections aggregation
type DailyCollectionDB struct {
	Day   string `bson:"_id"`
	Total int64  `bson:"total"`
	Count int    `bson:"count"`
}
