package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fee represents a fee obligation (invoice) for a single student.
// Status is derived from the payment ledger and is only ever written by the
// payment processor or at creation time.
type Fee struct {
	ID          string          `json:"id"`
	StudentID   string          `json:"student_id"`
	Class       *string         `json:"class,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Status      FeeStatus       `json:"status"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
