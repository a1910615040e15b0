package database

import (
	"database/sql"

	"gj-schools/app/billing"
	"gj-schools/app/models"

	"github.com/lib/pq"
)

// GetTeachers returns teachers ordered by newest first, optionally filtered
// with a case-insensitive search over name, email and subject.
func GetTeachers(db *sql.DB, search string) ([]models.Teacher, error) {
	query := `SELECT id, name, email, phone, subject, qualification, experience, salary, status, created_at
	          FROM teachers`
	var args []interface{}
	if search != "" {
		query += ` WHERE lower(name) LIKE $1 OR lower(email) LIKE $1 OR lower(subject) LIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var t models.Teacher
		err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Subject,
			&t.Qualification, &t.Experience, &t.Salary, &t.Status, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// CreateTeacher inserts a teacher record, generating the id when absent.
func CreateTeacher(db *sql.DB, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = billing.NewTeacherID()
	}
	if teacher.Status == "" {
		teacher.Status = "Active"
	}
	return db.QueryRow(
		`INSERT INTO teachers (id, name, email, phone, subject, qualification, experience, salary, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING created_at`,
		teacher.ID, teacher.Name, teacher.Email, teacher.Phone, teacher.Subject,
		teacher.Qualification, teacher.Experience, teacher.Salary, teacher.Status,
	).Scan(&teacher.CreatedAt)
}

// DeleteTeacher removes a single teacher.
func DeleteTeacher(db *sql.DB, id string) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := db.QueryRow(
		`DELETE FROM teachers WHERE id = $1
		 RETURNING id, name, email, phone, subject, qualification, experience, salary, status, created_at`,
		id,
	).Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Subject,
		&t.Qualification, &t.Experience, &t.Salary, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTeachers bulk-deletes teachers, returning the number removed.
func DeleteTeachers(db *sql.DB, ids []string) (int, error) {
	result, err := db.Exec(`DELETE FROM teachers WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	return int(deleted), err
}
