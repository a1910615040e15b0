package database

import (
	"database/sql"
	"fmt"

	"gj-schools/app/billing"
	"gj-schools/app/models"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CreateFee inserts a fee record. The id is generated when not supplied by
// the caller.
func CreateFee(db *sql.DB, fee *models.Fee) error {
	if fee.ID == "" {
		fee.ID = billing.NewInvoiceID()
	}
	if fee.Status == "" {
		fee.Status = models.FeeStatusPending
	}

	err := db.QueryRow(
		`INSERT INTO fees (id, student_id, class, amount, due_date, status, description)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING created_at, updated_at`,
		fee.ID, fee.StudentID, fee.Class, fee.Amount, fee.DueDate,
		string(fee.Status), fee.Description,
	).Scan(&fee.CreatedAt, &fee.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return billing.ErrDuplicateID
		}
		return fmt.Errorf("failed to insert fee: %v", err)
	}
	return nil
}

// GetFeeByID fetches a single fee.
func GetFeeByID(db *sql.DB, id string) (*models.Fee, error) {
	fee := &models.Fee{}
	err := db.QueryRow(
		`SELECT id, student_id, class, amount, due_date, status, description, created_at, updated_at
		 FROM fees WHERE id = $1`, id,
	).Scan(&fee.ID, &fee.StudentID, &fee.Class, &fee.Amount, &fee.DueDate,
		&fee.Status, &fee.Description, &fee.CreatedAt, &fee.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, billing.ErrFeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return fee, nil
}

// ListFees returns fees ordered by due date descending, optionally filtered
// by status.
func ListFees(db *sql.DB, status string) ([]models.Fee, error) {
	query := `SELECT id, student_id, class, amount, due_date, status, description, created_at, updated_at
	          FROM fees`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY due_date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []models.Fee
	for rows.Next() {
		var f models.Fee
		err := rows.Scan(&f.ID, &f.StudentID, &f.Class, &f.Amount, &f.DueDate,
			&f.Status, &f.Description, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// StudentFeeSummary is one row of a student's fee statement with the paid
// and outstanding totals aggregated from the payment ledger.
type StudentFeeSummary struct {
	models.Fee
	TotalPaid decimal.Decimal `json:"total_paid"`
	Balance   decimal.Decimal `json:"balance"`
}

// GetStudentFees returns all fees for one student with paid/balance
// aggregates joined in.
func GetStudentFees(db *sql.DB, studentID string) ([]StudentFeeSummary, error) {
	rows, err := db.Query(
		`SELECT f.id, f.student_id, f.class, f.amount, f.due_date, f.status,
		        f.description, f.created_at, f.updated_at,
		        COALESCE(SUM(p.amount), 0) AS total_paid
		 FROM fees f
		 LEFT JOIN payments p ON f.id = p.fee_id
		 WHERE f.student_id = $1
		 GROUP BY f.id
		 ORDER BY f.created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []StudentFeeSummary
	for rows.Next() {
		var s StudentFeeSummary
		err := rows.Scan(&s.ID, &s.StudentID, &s.Class, &s.Amount, &s.DueDate,
			&s.Status, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.TotalPaid)
		if err != nil {
			return nil, err
		}
		s.Balance = billing.Balance(s.Amount, s.TotalPaid)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
