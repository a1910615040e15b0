package database

import (
	"database/sql"
	"fmt"
	"time"

	"gj-schools/app/billing"
	"gj-schools/app/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// RecordPayment appends a payment to a fee's ledger and moves the fee status
// in a single transaction. The fee row is locked with SELECT ... FOR UPDATE
// so concurrent payments against the same fee are applied one at a time and
// the overpayment check cannot be raced. On success the payment's ID,
// StudentID, ReceiptNumber and CreatedAt are filled in.
func RecordPayment(db *sql.DB, payment *models.Payment, issuedBy string) (*billing.ApplyResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var studentID string
	var feeAmount decimal.Decimal
	err = tx.QueryRow(`SELECT student_id, amount FROM fees WHERE id = $1 FOR UPDATE`, payment.FeeID).
		Scan(&studentID, &feeAmount)
	if err == sql.ErrNoRows {
		return nil, billing.ErrFeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock fee: %v", err)
	}

	var paidSoFar decimal.Decimal
	err = tx.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE fee_id = $1`, payment.FeeID).
		Scan(&paidSoFar)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %v", err)
	}

	result, err := billing.Apply(feeAmount, paidSoFar, payment.Amount)
	if err != nil {
		return nil, err
	}

	payment.ID = uuid.NewString()
	payment.StudentID = studentID
	payment.ReceiptNumber = billing.NewReceiptNumber()
	payment.IssuedBy = issuedBy
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}

	err = tx.QueryRow(
		`INSERT INTO payments (id, fee_id, student_id, amount, method, payment_date, notes, receipt_number, issued_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING created_at`,
		payment.ID, payment.FeeID, payment.StudentID, payment.Amount,
		payment.Method, payment.PaymentDate, payment.Notes,
		payment.ReceiptNumber, payment.IssuedBy,
	).Scan(&payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %v", err)
	}

	_, err = tx.Exec(`UPDATE fees SET status = $1, updated_at = now() WHERE id = $2`,
		string(result.Status), payment.FeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to update fee status: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPaymentsByFeeIDs returns each fee's payments ordered by payment date
// ascending, keyed by fee id. Used for the enriched fee listing.
func GetPaymentsByFeeIDs(db *sql.DB, feeIDs []string) (map[string][]models.Payment, error) {
	paymentsMap := make(map[string][]models.Payment)
	if len(feeIDs) == 0 {
		return paymentsMap, nil
	}

	rows, err := db.Query(
		`SELECT id, fee_id, student_id, amount, method, payment_date, notes, receipt_number, issued_by, created_at
		 FROM payments
		 WHERE fee_id = ANY($1)
		 ORDER BY payment_date ASC`,
		pq.Array(feeIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Payment
		err := rows.Scan(
			&p.ID, &p.FeeID, &p.StudentID, &p.Amount, &p.Method,
			&p.PaymentDate, &p.Notes, &p.ReceiptNumber, &p.IssuedBy, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		paymentsMap[p.FeeID] = append(paymentsMap[p.FeeID], p)
	}
	return paymentsMap, rows.Err()
}
