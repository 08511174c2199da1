package models

import "time"

// PaymentAttemptRest is public facing payment attempt details to be returned in the response
type PaymentAttemptRest struct {
	ID                   string     `json:"id"`
	InvoiceID            string     `json:"invoice_id"`
	StudentID            string     `json:"student_id"`
	Amount               string     `json:"amount"`
	GatewayTransactionID string     `json:"gateway_transaction_id"`
	NextURL              string     `json:"next_url,omitempty"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

// StuckPaymentsRest is the response body for the stuck payments query
type StuckPaymentsRest struct {
	ThresholdMinutes int                  `json:"threshold_minutes"`
	Total            int                  `json:"total"`
	Payments         []PaymentAttemptRest `json:"payments"`
}

// DailyCollectionRest is the amount collected on a single day
type DailyCollectionRest struct {
	Date  string `json:"date"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

// DailyCollectionsRest is the response body for the daily collections report
type DailyCollectionsRest struct {
	From       string                `json:"from"`
	To         string                `json:"to"`
	GrandTotal string                `json:"grand_total"`
	Days       []DailyCollectionRest `json:"days"`
}

// StatusResponse is the terminal status returned by the gateway for a transaction
type StatusResponse struct {
	Status string
}
