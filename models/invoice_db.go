package models

import "time"

// InvoiceDB is a fee obligation for a student as stored in the DB
type InvoiceDB struct {
	ID           string    `bson:"_id"`
	TenantID     string    `bson:"tenant_id"`
	StudentID    string    `bson:"student_id"`
	Description  string    `bson:"description"`
	AcademicYear string    `bson:"academic_year"`
	TotalAmount  int64     `bson:"total_amount"`
	PaidAmount   int64     `bson:"paid_amount"`
	Status       string    `bson:"status"`
	DueDate      time.Time `bson:"due_date"`
	CreatedAt    time.Time `bson:"created_at"`
	CreatedBy    string    `bson:"created_by"`
	PaidAt       time.Time `bson:"paid_at,omitempty"`
	PaidVia      string    `bson:"paid_via,omitempty"`
	Archived     bool      `bson:"archived"`
}

// InvoiceFilter narrows a list of invoices within a tenant
type InvoiceFilter struct {
	StudentID       string
	Status          string
	AcademicYear    string
	IncludeArchived bool
}
