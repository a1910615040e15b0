package billing

import (
	"gj-schools/app/models"

	"github.com/shopspring/decimal"
)

// TotalPaid sums the amounts of a fee's payment ledger.
func TotalPaid(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Balance returns feeAmount minus totalPaid. In a consistent ledger the
// result is never negative; the processor's overpayment guard ensures that.
func Balance(feeAmount, totalPaid decimal.Decimal) decimal.Decimal {
	return feeAmount.Sub(totalPaid)
}

// StatusFor derives the fee status implied by the amount paid to date.
// This is the only place fee status is computed from the ledger.
func StatusFor(feeAmount, totalPaid decimal.Decimal) models.FeeStatus {
	switch {
	case totalPaid.GreaterThanOrEqual(feeAmount):
		return models.FeeStatusPaid
	case totalPaid.GreaterThan(decimal.Zero):
		return models.FeeStatusPartial
	default:
		return models.FeeStatusPending
	}
}

// ApplyResult describes the ledger state after a payment is accepted.
type ApplyResult struct {
	TotalPaid decimal.Decimal
	Balance   decimal.Decimal
	Status    models.FeeStatus
}

// Apply decides whether a payment of amount can be accepted against a fee
// with paidSoFar already in the ledger. It either returns the new ledger
// state or an error, with no side effects. The transactional shell in
// app/database serializes concurrent calls for one fee, so the check here is
// race-free once the fee row is locked.
func Apply(feeAmount, paidSoFar, amount decimal.Decimal) (ApplyResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ApplyResult{}, ErrInvalidAmount
	}
	newTotal := paidSoFar.Add(amount)
	if newTotal.GreaterThan(feeAmount) {
		return ApplyResult{}, &ExceedsBalanceError{Balance: Balance(feeAmount, paidSoFar)}
	}
	return ApplyResult{
		TotalPaid: newTotal,
		Balance:   Balance(feeAmount, newTotal),
		Status:    StatusFor(feeAmount, newTotal),
	}, nil
}
