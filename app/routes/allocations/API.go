package allocations

import (
	"database/sql"
	"log"

	"gj-schools/app/helpers"
	"gj-schools/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

func GetAllocationsAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, err := db.Query(`
		SELECT ca.id, ca.teacher_id, ca.class_name, ca.subject, ca.academic_year, ca.created_at,
		       COALESCE(t.name, '') AS teacher_name, t.subject AS teacher_subject
		FROM class_allocations ca
		LEFT JOIN teachers t ON ca.teacher_id = t.id
		ORDER BY ca.class_name, ca.subject`)
	if err != nil {
		log.Printf("Error fetching allocations: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching allocations"})
	}
	defer rows.Close()

	allocations := []models.ClassAllocation{}
	for rows.Next() {
		var a models.ClassAllocation
		err := rows.Scan(&a.ID, &a.TeacherID, &a.ClassName, &a.Subject,
			&a.AcademicYear, &a.CreatedAt, &a.TeacherName, &a.TeacherSubject)
		if err != nil {
			continue
		}
		allocations = append(allocations, a)
	}
	return c.JSON(allocations)
}

type CreateAllocationRequest struct {
	TeacherID    string `json:"teacher_id" validate:"required,max=50"`
	ClassName    string `json:"class_name" validate:"required,max=50"`
	Subject      string `json:"subject" validate:"required,max=100"`
	AcademicYear string `json:"academic_year" validate:"omitempty,len=9"`
}

func CreateAllocationAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateAllocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	if req.AcademicYear == "" {
		req.AcademicYear = "2024/2025"
	}

	var a models.ClassAllocation
	err := db.QueryRow(
		`INSERT INTO class_allocations (teacher_id, class_name, subject, academic_year)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id, teacher_id, class_name, subject, academic_year, created_at`,
		req.TeacherID, req.ClassName, req.Subject, req.AcademicYear,
	).Scan(&a.ID, &a.TeacherID, &a.ClassName, &a.Subject, &a.AcademicYear, &a.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(400).JSON(fiber.Map{"message": "This allocation already exists"})
		}
		log.Printf("Error creating allocation: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error creating allocation"})
	}

	return c.JSON(a)
}

func DeleteAllocationAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	result, err := db.Exec(`DELETE FROM class_allocations WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting allocation: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error deleting allocation"})
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return c.Status(404).JSON(fiber.Map{"message": "Allocation not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Allocation deleted successfully"})
}
