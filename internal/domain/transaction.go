package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Exact decimal amounts
)

// Transaction statuses
const (
	StatusSubmitted = "SUBMITTED" // Initial status, also restored after an update
	StatusApproved  = "APPROVED"  // Terminal status after approval
	StatusRejected  = "REJECTED"  // Can be revived back to SUBMITTED via update
	StatusCancelled = "CANCELLED" // Terminal status after cancellation
	StatusCompleted = "COMPLETED" // Reserved, no transition reaches it
)

// Operation contexts selecting validation and transition rules
const (
	ContextCreate  = "CREATE"
	ContextUpdate  = "UPDATE"
	ContextApprove = "APPROVE"
	ContextReject  = "REJECT"
	ContextCancel  = "CANCEL"
)

// Transaction type tags
const (
	TypePayment = "PAYMENT"
	TypeLoan    = "LOAN"
)

// DefaultCurrency is the system's default currency code
const DefaultCurrency = "CNY"

// MaxPageSize caps the page size accepted at the API boundary
const MaxPageSize = 500

// MaxDescriptionLength is the longest accepted transaction description
const MaxDescriptionLength = 150

// Transaction Model
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`                                                  // Primary key, assigned by the store
	Type            string          `gorm:"size:50" json:"type"`                                                   // Transaction category
	Amount          decimal.Decimal `gorm:"type:decimal(19,2)" json:"amount"`                                      // Transaction amount
	TransactionDate time.Time       `gorm:"column:transaction_date" json:"transactionDate"`                        // Point in time supplied by the caller
	Description     string          `gorm:"column:transaction_description;size:255" json:"transactionDescription"` // Free text, max 150 chars
	DebitAccount    string          `gorm:"column:debit_account;size:50" json:"debitAccount"`                      // Debited account identifier
	CreditAccount   string          `gorm:"column:credit_account;size:50" json:"creditAccount"`                    // Credited account identifier
	Currency        string          `gorm:"size:10" json:"currency"`                                               // Currency code
	Status          string          `gorm:"size:50" json:"status"`                                                 // Lifecycle status
	LastUpdated     time.Time       `gorm:"column:last_updated" json:"lastUpdated"`                                // Set on every mutation
	SubmittedBy     string          `gorm:"column:submitted_by" json:"submittedBy"`                                // Actor who created the record, set once
	SubmittedAt     time.Time       `gorm:"column:submitted_at" json:"submittedAt"`                                // Creation time, set once
	ApprovedBy      string          `gorm:"column:approved_by" json:"approvedBy"`                                  // Present in the schema, never written
	ApprovedAt      *time.Time      `gorm:"column:approved_at" json:"approvedAt"`                                  // Present in the schema, never written
}

// TODO: populate ApprovedBy/ApprovedAt on APPROVE once product confirms
// whether approval metadata should be recorded.

// TableName sets the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionInput is the inbound transaction payload. Pointer fields
// distinguish "absent" from a zero value, which the validation rules need.
type TransactionInput struct {
	ID              *uint            `json:"id"`                     // Must be absent on creation
	Type            string           `json:"type"`                   // Transaction category
	Amount          *decimal.Decimal `json:"amount"`                 // Required on create/update
	TransactionDate *time.Time       `json:"transactionDate"`        // Required on create/update
	Description     string           `json:"transactionDescription"` // Required, non-blank, max 150 chars
	DebitAccount    string           `json:"debitAccount"`           // Required, non-blank
	CreditAccount   string           `json:"creditAccount"`          // Required, non-blank
	Currency        string           `json:"currency"`               // Required, non-blank
}
