package fees

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"gj-schools/app/billing"
	"gj-schools/app/database"
	"gj-schools/app/helpers"
	"gj-schools/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// FeeResponse is a fee enriched with its student, ledger and derived
// totals for list views.
type FeeResponse struct {
	ID          string           `json:"id"`
	StudentID   string           `json:"student_id"`
	Student     *models.Student  `json:"student"`
	Class       *string          `json:"class"`
	Amount      decimal.Decimal  `json:"amount"`
	TotalPaid   decimal.Decimal  `json:"total_paid"`
	Balance     decimal.Decimal  `json:"balance"`
	DueDate     time.Time        `json:"due_date"`
	Status      models.FeeStatus `json:"status"`
	Description *string          `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Payments    []models.Payment `json:"payments"`
}

// GetFeesAPI lists fees ordered by due date descending, optionally filtered
// by status, each enriched with the student record, the payment ledger and
// the paid/balance totals. Enrichment is done with three batched queries
// instead of a per-fee join.
func GetFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	status := c.Query("status")
	if status != "" && !models.ValidFeeStatus(status) {
		return c.Status(400).JSON(fiber.Map{"message": "Status must be one of: pending, partial, paid, overdue"})
	}

	feeRows, err := database.ListFees(db, status)
	if err != nil {
		log.Printf("Error fetching fees: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching fees"})
	}
	if len(feeRows) == 0 {
		return c.JSON([]FeeResponse{})
	}

	feeIDs := make([]string, 0, len(feeRows))
	studentIDSet := make(map[string]struct{})
	var studentIDs []string
	for _, f := range feeRows {
		feeIDs = append(feeIDs, f.ID)
		if _, seen := studentIDSet[f.StudentID]; !seen {
			studentIDSet[f.StudentID] = struct{}{}
			studentIDs = append(studentIDs, f.StudentID)
		}
	}

	studentsMap, err := database.GetStudentsByIDs(db, studentIDs)
	if err != nil {
		log.Printf("Error fetching students for fees: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching fees"})
	}
	paymentsMap, err := database.GetPaymentsByFeeIDs(db, feeIDs)
	if err != nil {
		log.Printf("Error fetching payments for fees: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching fees"})
	}

	enriched := make([]FeeResponse, 0, len(feeRows))
	for _, f := range feeRows {
		payments := paymentsMap[f.ID]
		if payments == nil {
			payments = []models.Payment{}
		}
		totalPaid := billing.TotalPaid(payments)

		resp := FeeResponse{
			ID:          f.ID,
			StudentID:   f.StudentID,
			Class:       f.Class,
			Amount:      f.Amount,
			TotalPaid:   totalPaid,
			Balance:     billing.Balance(f.Amount, totalPaid),
			DueDate:     f.DueDate,
			Status:      f.Status,
			Description: f.Description,
			CreatedAt:   f.CreatedAt,
			UpdatedAt:   f.UpdatedAt,
			Payments:    payments,
		}
		if s, ok := studentsMap[f.StudentID]; ok {
			student := s
			resp.Student = &student
		}
		enriched = append(enriched, resp)
	}

	return c.JSON(enriched)
}

type CreateFeeRequest struct {
	ID        string  `json:"id" validate:"omitempty,max=50"`
	StudentID string  `json:"student_id" validate:"required,max=50"`
	Class     *string `json:"class" validate:"omitempty,max=100"`
	Amount    float64 `json:"amount" validate:"required,gt=0,lte=999999.99"`
	DueDate   string  `json:"due_date" validate:"required"`
	Status    string  `json:"status" validate:"omitempty,oneof=pending partial paid overdue"`
}

// CreateFeeAPI creates a fee directly, outside the enrollment hook.
func CreateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide a valid due date"})
	}

	fee := &models.Fee{
		ID:        req.ID,
		StudentID: req.StudentID,
		Class:     req.Class,
		Amount:    decimal.NewFromFloat(req.Amount).Round(2),
		DueDate:   dueDate,
		Status:    models.FeeStatus(req.Status),
	}
	if err := database.CreateFee(db, fee); err != nil {
		if errors.Is(err, billing.ErrDuplicateID) {
			return c.Status(400).JSON(fiber.Map{"message": "Fee ID already exists"})
		}
		log.Printf("Error creating fee: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error creating fee"})
	}

	return c.JSON(fee)
}
