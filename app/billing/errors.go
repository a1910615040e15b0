package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the fee/payment core. Handlers map these onto HTTP
// statuses; use errors.Is / errors.As to match.
var (
	ErrFeeNotFound     = errors.New("fee not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrDuplicateID     = errors.New("id already exists")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
)

// ExceedsBalanceError is returned when a payment would overshoot the
// remaining balance of a fee. Balance carries the exact amount still owed so
// the caller can resubmit with a corrected figure.
type ExceedsBalanceError struct {
	Balance decimal.Decimal
}

func (e *ExceedsBalanceError) Error() string {
	return fmt.Sprintf("payment amount exceeds remaining balance. Balance: GHS %s", e.Balance.StringFixed(2))
}
