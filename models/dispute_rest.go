package models

import "time"

// IncomingDisputeRequest is the data received in the body of a create dispute request
type IncomingDisputeRequest struct {
	InvoiceID            string `json:"invoice_id"            validate:"required"`
	TransactionReference string `json:"transaction_reference" validate:"required"`
	ClaimedAmount        string `json:"claimed_amount"        validate:"required,amount"`
	Note                 string `json:"note"                  validate:"required,notblank,max=2000"`
}

// ResolveDisputeRequest is the data received in the body of a resolve dispute request
type ResolveDisputeRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Note   string `json:"note"   validate:"required,notblank,max=2000"`
}

// DisputeRest is public facing dispute details to be returned in the response
type DisputeRest struct {
	ID                   string           `json:"id"`
	InvoiceID            string           `json:"invoice_id"`
	PaymentAttemptID     string           `json:"payment_attempt_id,omitempty"`
	TransactionReference string           `json:"transaction_reference"`
	ClaimedAmount        string           `json:"claimed_amount"`
	Note                 string           `json:"note"`
	Status               string           `json:"status"`
	AdminNote            string           `json:"admin_note,omitempty"`
	ResolvedBy           string           `json:"resolved_by,omitempty"`
	ResolvedAt           *time.Time       `json:"resolved_at,omitempty"`
	CreatedBy            string           `json:"created_by"`
	CreatedAt            time.Time        `json:"created_at"`
	Links                DisputeLinksRest `json:"links"`
}

// DisputeLinksRest is a set of URLs related to the dispute, including self
type DisputeLinksRest struct {
	Self    string `json:"self"`
	Invoice string `json:"invoice"`
}

// DisputeListRest is the response body for the dispute list polled by admin sessions
type DisputeListRest struct {
	Total    int           `json:"total"`
	Disputes []DisputeRest `json:"disputes"`
}
