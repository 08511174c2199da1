package models

// Invoice statuses as stored in the DB
const (
	InvoicePending   = "pending"
	InvoicePaid      = "paid"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"
)

// Payment attempt statuses as stored in the DB
const (
	AttemptProcessing = "processing"
	AttemptSuccess    = "success"
	AttemptFailed     = "failed"
)

// Dispute statuses as stored in the DB
const (
	DisputeOpen     = "open"
	DisputeApproved = "approved"
	DisputeRejected = "rejected"
)

// Dispute resolution actions accepted by the resolve endpoint
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Sources through which an invoice can become paid
const (
	PaidViaCallback  = "callback"
	PaidViaDispute   = "dispute"
	PaidViaReconcile = "reconcile"
)

// Roles carried in bearer tokens
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)
