package classes

import (
	"database/sql"
	"log"
	"strings"

	"gj-schools/app/helpers"
	"gj-schools/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// GetClassesAPI lists active classes with their class teacher and active
// student count.
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, err := db.Query(`
		SELECT c.id, c.name, c.grade_level, c.class_teacher_id, c.capacity,
		       c.academic_year, c.is_active, c.created_at,
		       COALESCE(t.name, '') AS class_teacher_name,
		       (SELECT COUNT(*) FROM students s WHERE s.class = c.name AND s.status = 'Active') AS student_count
		FROM classes c
		LEFT JOIN teachers t ON c.class_teacher_id = t.id
		WHERE c.is_active = true
		ORDER BY c.grade_level, c.name`)
	if err != nil {
		log.Printf("Error fetching classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching classes"})
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var cl models.Class
		err := rows.Scan(&cl.ID, &cl.Name, &cl.GradeLevel, &cl.ClassTeacherID,
			&cl.Capacity, &cl.AcademicYear, &cl.IsActive, &cl.CreatedAt,
			&cl.ClassTeacherName, &cl.StudentCount)
		if err != nil {
			continue
		}
		classes = append(classes, cl)
	}
	return c.JSON(classes)
}

type CreateClassRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=50"`
	GradeLevel     int     `json:"grade_level" validate:"required,min=1,max=12"`
	ClassTeacherID *string `json:"class_teacher_id" validate:"omitempty,max=50"`
	Capacity       int     `json:"capacity" validate:"omitempty,min=1,max=100"`
	AcademicYear   string  `json:"academic_year" validate:"omitempty,len=9"`
}

func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	if req.Capacity == 0 {
		req.Capacity = 30
	}
	if req.AcademicYear == "" {
		req.AcademicYear = "2024/2025"
	}

	var cl models.Class
	err := db.QueryRow(
		`INSERT INTO classes (name, grade_level, class_teacher_id, capacity, academic_year)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id, name, grade_level, class_teacher_id, capacity, academic_year, is_active, created_at`,
		strings.TrimSpace(req.Name), req.GradeLevel, req.ClassTeacherID, req.Capacity, req.AcademicYear,
	).Scan(&cl.ID, &cl.Name, &cl.GradeLevel, &cl.ClassTeacherID, &cl.Capacity,
		&cl.AcademicYear, &cl.IsActive, &cl.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(400).JSON(fiber.Map{"message": "Class already exists"})
		}
		log.Printf("Error creating class: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error creating class"})
	}

	return c.JSON(cl)
}
