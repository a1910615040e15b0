package attendance

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"gj-schools/app/helpers"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// GetAttendanceAPI lists attendance records with optional date, class and
// student filters.
func GetAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	query := `
		SELECT a.id, a.student_id, a.class, a.attendance_date, a.status, a.remarks,
		       COALESCE(a.marked_by::text, ''), a.created_at, a.updated_at,
		       COALESCE(s.name, '') AS student_name, s.class AS student_class,
		       COALESCE(u.name, '') AS marked_by_name
		FROM attendance a
		LEFT JOIN students s ON a.student_id = s.id
		LEFT JOIN users u ON a.marked_by = u.id
		WHERE 1=1`
	var args []interface{}

	if date := c.Query("date"); date != "" {
		args = append(args, date)
		query += fmt.Sprintf(" AND a.attendance_date = $%d", len(args))
	}
	if class := c.Query("class"); class != "" {
		args = append(args, class)
		query += fmt.Sprintf(" AND a.class = $%d", len(args))
	}
	if studentID := c.Query("student_id"); studentID != "" {
		args = append(args, studentID)
		query += fmt.Sprintf(" AND a.student_id = $%d", len(args))
	}

	query += " ORDER BY a.attendance_date DESC, s.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Printf("Error fetching attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching attendance"})
	}
	defer rows.Close()

	records := []models.Attendance{}
	for rows.Next() {
		var a models.Attendance
		err := rows.Scan(&a.ID, &a.StudentID, &a.Class, &a.AttendanceDate, &a.Status,
			&a.Remarks, &a.MarkedBy, &a.CreatedAt, &a.UpdatedAt,
			&a.StudentName, &a.StudentClass, &a.MarkedByName)
		if err != nil {
			continue
		}
		records = append(records, a)
	}
	return c.JSON(records)
}

type AttendanceRecord struct {
	StudentID      string  `json:"student_id" validate:"required,max=50"`
	Class          string  `json:"class" validate:"required,max=100"`
	AttendanceDate string  `json:"attendance_date" validate:"omitempty"`
	Status         string  `json:"status" validate:"required,oneof=present absent late excused"`
	Remarks        *string `json:"remarks" validate:"omitempty,max=500"`
}

type MarkAttendanceRequest struct {
	Records []AttendanceRecord `json:"records"`
}

// MarkAttendanceAPI upserts one or more attendance records in a single
// transaction. A student's record for a day is overwritten on re-mark.
func MarkAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil || len(req.Records) == 0 {
		return c.Status(400).JSON(fiber.Map{"message": "Please provide attendance records"})
	}
	for i, r := range req.Records {
		if err := helpers.Validate.Struct(r); err != nil {
			return c.Status(400).JSON(fiber.Map{
				"message": fmt.Sprintf("Record %d: %s", i+1, helpers.ValidationMessage(err)),
			})
		}
	}

	markedBy := auth.CurrentUser(c).UserID

	tx, err := db.Begin()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Error marking attendance"})
	}
	defer tx.Rollback()

	inserted := []models.Attendance{}
	for _, r := range req.Records {
		date := r.AttendanceDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		var a models.Attendance
		err := tx.QueryRow(
			`INSERT INTO attendance (student_id, class, attendance_date, status, remarks, marked_by)
			 VALUES ($1,$2,$3,$4,$5,$6)
			 ON CONFLICT (student_id, attendance_date)
			 DO UPDATE SET status = $4, remarks = $5, marked_by = $6, updated_at = now()
			 RETURNING id, student_id, class, attendance_date, status, remarks, marked_by, created_at, updated_at`,
			r.StudentID, r.Class, date, r.Status, r.Remarks, markedBy,
		).Scan(&a.ID, &a.StudentID, &a.Class, &a.AttendanceDate, &a.Status,
			&a.Remarks, &a.MarkedBy, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			log.Printf("Error marking attendance: %v", err)
			return c.Status(500).JSON(fiber.Map{"message": "Error marking attendance"})
		}
		inserted = append(inserted, a)
	}

	if err := tx.Commit(); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Error marking attendance"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Attendance marked for %d student(s)", len(inserted)),
		"records": inserted,
	})
}

// GetAttendanceSummaryAPI aggregates per-student attendance counts,
// optionally filtered by student or class.
func GetAttendanceSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	query := `
		SELECT s.id, s.name, s.class,
		       COUNT(a.id) AS total_days,
		       COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS present_days,
		       COUNT(CASE WHEN a.status = 'absent' THEN 1 END) AS absent_days,
		       COUNT(CASE WHEN a.status = 'late' THEN 1 END) AS late_days,
		       COUNT(CASE WHEN a.status = 'excused' THEN 1 END) AS excused_days
		FROM students s
		LEFT JOIN attendance a ON s.id = a.student_id
		WHERE 1=1`
	var args []interface{}

	if studentID := c.Query("student_id"); studentID != "" {
		args = append(args, studentID)
		query += fmt.Sprintf(" AND s.id = $%d", len(args))
	}
	if class := c.Query("class"); class != "" {
		args = append(args, class)
		query += fmt.Sprintf(" AND s.class = $%d", len(args))
	}

	query += " GROUP BY s.id, s.name, s.class ORDER BY s.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Printf("Error fetching attendance summary: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching summary"})
	}
	defer rows.Close()

	type summary struct {
		StudentID   string  `json:"student_id"`
		Name        string  `json:"name"`
		Class       *string `json:"class,omitempty"`
		TotalDays   int     `json:"total_days"`
		PresentDays int     `json:"present_days"`
		AbsentDays  int     `json:"absent_days"`
		LateDays    int     `json:"late_days"`
		ExcusedDays int     `json:"excused_days"`
	}

	summaries := []summary{}
	for rows.Next() {
		var s summary
		err := rows.Scan(&s.StudentID, &s.Name, &s.Class, &s.TotalDays,
			&s.PresentDays, &s.AbsentDays, &s.LateDays, &s.ExcusedDays)
		if err != nil {
			continue
		}
		summaries = append(summaries, s)
	}
	return c.JSON(summaries)
}
