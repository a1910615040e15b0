package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FeeTier maps a grade-level marker in the class label to a term fee.
type FeeTier struct {
	Match  string
	Amount decimal.Decimal
}

// DefaultTermFee applies when a student's class matches no tier, including
// blank or unrecognized class labels.
var DefaultTermFee = decimal.NewFromFloat(450.00)

// TermFeeTiers is evaluated in order; the first tier whose Match is
// contained in the class label wins.
var TermFeeTiers = []FeeTier{
	{Match: "Grade 9", Amount: decimal.NewFromFloat(2000.00)},
	{Match: "Grade 8", Amount: decimal.NewFromFloat(1500.00)},
	{Match: "Grade 7", Amount: decimal.NewFromFloat(1200.00)},
	{Match: "Grade 6", Amount: decimal.NewFromFloat(1200.00)},
}

// TierAmount returns the term fee for a class label.
func TierAmount(class string) decimal.Decimal {
	for _, tier := range TermFeeTiers {
		if strings.Contains(class, tier.Match) {
			return tier.Amount
		}
	}
	return DefaultTermFee
}

// TermDueDate returns the due date for an auto-created term fee: one
// calendar month after enrollment.
func TermDueDate(enrolledAt time.Time) time.Time {
	return enrolledAt.AddDate(0, 1, 0)
}
