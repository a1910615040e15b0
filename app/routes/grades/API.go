package grades

import (
	"database/sql"
	"log"

	"gj-schools/app/helpers"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetGradesAPI lists grades with student names joined in.
func GetGradesAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, err := db.Query(`
		SELECT g.id, g.student_id, g.subject, g.grade, COALESCE(g.term, ''), COALESCE(g.academic_year, ''),
		       g.remarks, COALESCE(g.teacher_id::text, ''), g.created_at,
		       COALESCE(s.name, '') AS student_name, s.class
		FROM grades g
		LEFT JOIN students s ON g.student_id = s.id
		ORDER BY g.created_at DESC`)
	if err != nil {
		log.Printf("Error fetching grades: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching grades"})
	}
	defer rows.Close()

	grades := []models.Grade{}
	for rows.Next() {
		var g models.Grade
		err := rows.Scan(&g.ID, &g.StudentID, &g.Subject, &g.Grade, &g.Term,
			&g.AcademicYear, &g.Remarks, &g.TeacherID, &g.CreatedAt,
			&g.StudentName, &g.StudentClass)
		if err != nil {
			continue
		}
		grades = append(grades, g)
	}
	return c.JSON(grades)
}

type CreateGradeRequest struct {
	StudentID    string  `json:"student_id" validate:"required,max=50"`
	Subject      string  `json:"subject" validate:"required,max=100"`
	Grade        string  `json:"grade" validate:"required,oneof=A+ A B+ B C+ C D+ D F"`
	Term         string  `json:"term" validate:"required,max=50"`
	AcademicYear string  `json:"academic_year" validate:"required,max=20"`
	Remarks      *string `json:"remarks" validate:"omitempty,max=1000"`
}

func CreateGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	grade := models.Grade{
		ID:           uuid.NewString(),
		StudentID:    req.StudentID,
		Subject:      req.Subject,
		Grade:        req.Grade,
		Term:         req.Term,
		AcademicYear: req.AcademicYear,
		Remarks:      req.Remarks,
		TeacherID:    auth.CurrentUser(c).UserID,
	}

	err := db.QueryRow(
		`INSERT INTO grades (id, student_id, subject, grade, term, academic_year, remarks, teacher_id)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING created_at`,
		grade.ID, grade.StudentID, grade.Subject, grade.Grade, grade.Term,
		grade.AcademicYear, grade.Remarks, grade.TeacherID,
	).Scan(&grade.CreatedAt)
	if err != nil {
		log.Printf("Error creating grade: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error creating grade"})
	}

	return c.JSON(grade)
}
