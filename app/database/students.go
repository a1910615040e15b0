package database

import (
	"database/sql"
	"fmt"
	"time"

	"gj-schools/app/billing"
	"gj-schools/app/models"

	"github.com/lib/pq"
)

// GetStudents returns students ordered by newest first, optionally filtered
// with a case-insensitive search over name, id and email.
func GetStudents(db *sql.DB, search string) ([]models.Student, error) {
	query := `SELECT id, name, email, phone, dob, class, parent_name, parent_phone, address, status, created_at, updated_at
	          FROM students`
	var args []interface{}
	if search != "" {
		query += ` WHERE lower(name) LIKE $1 OR lower(id) LIKE $1 OR lower(email) LIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.DOB, &s.Class,
			&s.ParentName, &s.ParentPhone, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID fetches a single student.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	err := db.QueryRow(
		`SELECT id, name, email, phone, dob, class, parent_name, parent_phone, address, status, created_at, updated_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.DOB, &s.Class,
		&s.ParentName, &s.ParentPhone, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, billing.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudentsByIDs returns the given students keyed by id, for batch
// enrichment of fee listings.
func GetStudentsByIDs(db *sql.DB, ids []string) (map[string]models.Student, error) {
	studentsMap := make(map[string]models.Student)
	if len(ids) == 0 {
		return studentsMap, nil
	}

	rows, err := db.Query(
		`SELECT id, name, email, phone, dob, class, parent_name, parent_phone, address, status, created_at, updated_at
		 FROM students WHERE id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Student
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.DOB, &s.Class,
			&s.ParentName, &s.ParentPhone, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		studentsMap[s.ID] = s
	}
	return studentsMap, rows.Err()
}

// CreateStudentWithInvoice enrolls a student: the student row and their
// first term-fee invoice are inserted in one transaction so an enrolled
// student always has an invoice. The fee amount comes from the grade-level
// tier table; due date is one month from enrollment. Returns the created
// invoice.
func CreateStudentWithInvoice(db *sql.DB, student *models.Student) (*models.Fee, error) {
	if student.ID == "" {
		student.ID = billing.NewStudentID()
	}
	if student.Status == "" {
		student.Status = models.StudentActive
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO students (id, name, email, phone, dob, class, parent_name, parent_phone, address, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING created_at, updated_at`,
		student.ID, student.Name, student.Email, student.Phone, student.DOB,
		student.Class, student.ParentName, student.ParentPhone, student.Address, student.Status,
	).Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, billing.ErrDuplicateID
		}
		return nil, fmt.Errorf("failed to insert student: %v", err)
	}

	class := ""
	if student.Class != nil {
		class = *student.Class
	}
	description := "Term Fee"
	now := time.Now()
	fee := &models.Fee{
		ID:          billing.NewInvoiceID(),
		StudentID:   student.ID,
		Class:       student.Class,
		Amount:      billing.TierAmount(class),
		DueDate:     billing.TermDueDate(now),
		Status:      models.FeeStatusPending,
		Description: &description,
	}

	err = tx.QueryRow(
		`INSERT INTO fees (id, student_id, class, amount, due_date, status, description)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING created_at, updated_at`,
		fee.ID, fee.StudentID, fee.Class, fee.Amount, fee.DueDate,
		string(fee.Status), fee.Description,
	).Scan(&fee.CreatedAt, &fee.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert enrollment fee: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return fee, nil
}

// DeleteStudentCascade removes a student together with their payments, fees
// and grades in dependency order, all in one transaction. Returns the
// deleted student record.
func DeleteStudentCascade(db *sql.DB, id string) (*models.Student, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM payments WHERE student_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete payments: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM fees WHERE student_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete fees: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM grades WHERE student_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete grades: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM attendance WHERE student_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete attendance: %v", err)
	}

	s := &models.Student{}
	err = tx.QueryRow(
		`DELETE FROM students WHERE id = $1
		 RETURNING id, name, email, phone, dob, class, parent_name, parent_phone, address, status, created_at, updated_at`,
		id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.DOB, &s.Class,
		&s.ParentName, &s.ParentPhone, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, billing.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete student: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteStudentsCascade bulk-deletes students and their dependent records.
// Returns the number of students removed.
func DeleteStudentsCascade(db *sql.DB, ids []string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM payments WHERE student_id = ANY($1)`, pq.Array(ids)); err != nil {
		return 0, fmt.Errorf("failed to delete payments: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM fees WHERE student_id = ANY($1)`, pq.Array(ids)); err != nil {
		return 0, fmt.Errorf("failed to delete fees: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM grades WHERE student_id = ANY($1)`, pq.Array(ids)); err != nil {
		return 0, fmt.Errorf("failed to delete grades: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM attendance WHERE student_id = ANY($1)`, pq.Array(ids)); err != nil {
		return 0, fmt.Errorf("failed to delete attendance: %v", err)
	}

	result, err := tx.Exec(`DELETE FROM students WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete students: %v", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(deleted), nil
}
