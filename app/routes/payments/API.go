package payments

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"gj-schools/app/billing"
	"gj-schools/app/database"
	"gj-schools/app/helpers"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	FeeID       string  `json:"fee_id" validate:"required,max=50"`
	Amount      float64 `json:"amount" validate:"required,gt=0,lte=999999.99"`
	Method      *string `json:"method" validate:"omitempty,max=50"`
	PaymentDate string  `json:"payment_date" validate:"omitempty"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

// CreatePaymentAPI records a partial or full payment against a fee. The
// heavy lifting (row lock, overpayment guard, status transition) happens in
// database.RecordPayment; this handler only parses, validates and maps
// errors onto HTTP statuses.
func CreatePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": helpers.ValidationMessage(err)})
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		parsed, err := parseDate(req.PaymentDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid payment_date"})
		}
		if parsed.After(time.Now()) {
			return c.Status(400).JSON(fiber.Map{"success": false, "message": "Payment date cannot be in the future"})
		}
		paymentDate = parsed
	}

	payment := &models.Payment{
		FeeID:       req.FeeID,
		Amount:      decimal.NewFromFloat(req.Amount).Round(2),
		Method:      req.Method,
		PaymentDate: paymentDate,
		Notes:       req.Notes,
	}

	result, err := database.RecordPayment(db, payment, auth.CurrentUser(c).UserID)
	if err != nil {
		var exceeds *billing.ExceedsBalanceError
		switch {
		case errors.Is(err, billing.ErrFeeNotFound):
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Fee not found"})
		case errors.As(err, &exceeds):
			return c.Status(400).JSON(fiber.Map{"success": false, "message": exceeds.Error()})
		case errors.Is(err, billing.ErrInvalidAmount):
			return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
		default:
			log.Printf("Payment error: %v", err)
			return c.Status(500).JSON(fiber.Map{"success": false, "message": "Payment processing failed"})
		}
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"paymentId":     payment.ID,
		"receiptNumber": payment.ReceiptNumber,
		"total_paid":    result.TotalPaid,
		"balance":       result.Balance,
		"status":        result.Status,
	})
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}
