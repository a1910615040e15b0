package billing_test

import (
	"errors"
	"testing"

	"gj-schools/app/billing"
	"gj-schools/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		paid   string
		want   models.FeeStatus
	}{
		{"nothing paid", "500.00", "0", models.FeeStatusPending},
		{"partially paid", "500.00", "200.00", models.FeeStatusPartial},
		{"one cent short", "500.00", "499.99", models.FeeStatusPartial},
		{"exactly paid", "500.00", "500.00", models.FeeStatusPaid},
		{"overpaid ledger still reads paid", "500.00", "500.01", models.FeeStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.StatusFor(dec(tt.amount), dec(tt.paid)))
		})
	}
}

func TestTotalPaidAndBalance(t *testing.T) {
	payments := []models.Payment{
		{Amount: dec("200.00")},
		{Amount: dec("150.50")},
		{Amount: dec("0.49")},
	}
	total := billing.TotalPaid(payments)
	assert.True(t, total.Equal(dec("350.99")), "got %s", total)

	balance := billing.Balance(dec("500.00"), total)
	assert.True(t, balance.Equal(dec("149.01")), "got %s", balance)
	assert.False(t, balance.IsNegative())
}

func TestApplyPartialThenFull(t *testing.T) {
	amount := dec("500.00")

	// Pay 200.00 on a fresh invoice.
	res, err := billing.Apply(amount, decimal.Zero, dec("200.00"))
	require.NoError(t, err)
	assert.True(t, res.TotalPaid.Equal(dec("200.00")))
	assert.True(t, res.Balance.Equal(dec("300.00")))
	assert.Equal(t, models.FeeStatusPartial, res.Status)

	// Pay the remaining 300.00.
	res, err = billing.Apply(amount, res.TotalPaid, dec("300.00"))
	require.NoError(t, err)
	assert.True(t, res.Balance.IsZero())
	assert.Equal(t, models.FeeStatusPaid, res.Status)

	// One cent more is rejected and the balance reported is exact.
	_, err = billing.Apply(amount, res.TotalPaid, dec("0.01"))
	var exceeds *billing.ExceedsBalanceError
	require.ErrorAs(t, err, &exceeds)
	assert.True(t, exceeds.Balance.IsZero())
}

func TestApplyRejectsNonPositiveAmounts(t *testing.T) {
	for _, amt := range []string{"0", "-1", "-0.01"} {
		_, err := billing.Apply(dec("100.00"), decimal.Zero, dec(amt))
		assert.ErrorIs(t, err, billing.ErrInvalidAmount, "amount %s", amt)
	}
}

// Concurrent payment attempts on one fee are serialized by the row lock, so
// at the ledger level they reduce to a sequence of Apply calls. Whatever the
// arrival order, exactly the attempts that still fit are accepted and the
// accepted total never exceeds the fee amount.
func TestApplySerializedAttempts(t *testing.T) {
	amount := dec("500.00")
	attempts := []string{"300.00", "300.00", "150.00", "100.00", "50.00"}

	paid := decimal.Zero
	var accepted, rejected int
	for _, a := range attempts {
		res, err := billing.Apply(amount, paid, dec(a))
		if err != nil {
			var exceeds *billing.ExceedsBalanceError
			require.ErrorAs(t, err, &exceeds)
			assert.True(t, exceeds.Balance.Equal(billing.Balance(amount, paid)))
			rejected++
			continue
		}
		paid = res.TotalPaid
		accepted++
	}

	assert.Equal(t, 3, accepted) // 300 + 150 + 50
	assert.Equal(t, 2, rejected)
	assert.True(t, paid.Equal(amount))
	assert.False(t, billing.Balance(amount, paid).IsNegative())
}

// Summing the ledger after any accepted payment equals the fee amount minus
// the balance that payment's response reported.
func TestLedgerSumMatchesReportedBalance(t *testing.T) {
	amount := dec("750.00")

	var ledger []models.Payment
	paid := decimal.Zero
	for _, a := range []string{"250.00", "125.50", "374.50"} {
		res, err := billing.Apply(amount, paid, dec(a))
		require.NoError(t, err)
		ledger = append(ledger, models.Payment{Amount: dec(a)})
		paid = res.TotalPaid

		sum := billing.TotalPaid(ledger)
		assert.True(t, sum.Equal(amount.Sub(res.Balance)), "sum %s, reported balance %s", sum, res.Balance)
	}
	assert.Equal(t, models.FeeStatusPaid, billing.StatusFor(amount, paid))
}

func TestApplyNeverLeavesStatusInconsistent(t *testing.T) {
	amount := dec("300.00")
	paid := decimal.Zero
	for _, a := range []string{"100.00", "100.00", "100.00"} {
		res, err := billing.Apply(amount, paid, dec(a))
		require.NoError(t, err)
		paid = res.TotalPaid
		assert.Equal(t, billing.StatusFor(amount, paid), res.Status)
		assert.True(t, res.Balance.Equal(amount.Sub(paid)))
	}
	assert.Equal(t, models.FeeStatusPaid, billing.StatusFor(amount, paid))

	_, err := billing.Apply(amount, paid, dec("1.00"))
	assert.True(t, errors.As(err, new(*billing.ExceedsBalanceError)))
}
