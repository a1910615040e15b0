package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an immutable ledger entry recording money received against a
// fee. Payments are created exactly once and never updated or deleted.
type Payment struct {
	ID            string          `json:"id"`
	FeeID         string          `json:"fee_id"`
	StudentID     string          `json:"student_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        *string         `json:"method,omitempty"`
	PaymentDate   time.Time       `json:"payment_date"`
	Notes         *string         `json:"notes,omitempty"`
	ReceiptNumber string          `json:"receipt_number"`
	IssuedBy      string          `json:"issued_by"`
	CreatedAt     time.Time       `json:"created_at"`
}
