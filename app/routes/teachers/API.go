package teachers

import (
	"database/sql"
	"log"
	"strings"

	"gj-schools/app/database"
	"gj-schools/app/helpers"
	"gj-schools/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func GetTeachersAPI(c *fiber.Ctx, db *sql.DB) error {
	search := strings.ToLower(strings.TrimSpace(c.Query("q")))

	teachers, err := database.GetTeachers(db, search)
	if err != nil {
		log.Printf("Error fetching teachers: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching teachers"})
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return c.JSON(teachers)
}

type CreateTeacherRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=300"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	Phone         *string  `json:"phone" validate:"omitempty,max=20"`
	Subject       *string  `json:"subject" validate:"omitempty,max=100"`
	Qualification *string  `json:"qualification" validate:"omitempty,max=200"`
	Experience    *int     `json:"experience" validate:"omitempty,min=0"`
	Salary        *float64 `json:"salary" validate:"omitempty,min=0"`
	Status        string   `json:"status" validate:"omitempty,oneof=Active Inactive 'On Leave'"`
}

func CreateTeacherAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	var salary *decimal.Decimal
	if req.Salary != nil {
		d := decimal.NewFromFloat(*req.Salary).Round(2)
		salary = &d
	}

	teacher := &models.Teacher{
		Name:          strings.TrimSpace(req.Name),
		Email:         req.Email,
		Phone:         req.Phone,
		Subject:       req.Subject,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		Salary:        salary,
		Status:        req.Status,
	}
	if err := database.CreateTeacher(db, teacher); err != nil {
		log.Printf("Error creating teacher: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error creating teacher"})
	}

	return c.JSON(teacher)
}

func DeleteTeacherAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	teacher, err := database.DeleteTeacher(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		log.Printf("Delete teacher error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Teacher deleted successfully",
		"teacher": teacher,
	})
}

func BulkDeleteTeachersAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Please provide an array of teacher IDs"})
	}

	deleted, err := database.DeleteTeachers(db, req.IDs)
	if err != nil {
		log.Printf("Bulk delete teachers error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete teachers"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Teachers deleted successfully",
		"deletedCount": deleted,
	})
}

// GetTeacherWorkloadAPI aggregates each teacher's class allocations.
func GetTeacherWorkloadAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, err := db.Query(`
		SELECT t.id, t.name,
		       COUNT(ca.id) AS allocations,
		       COUNT(DISTINCT ca.class_name) AS classes,
		       COUNT(DISTINCT ca.subject) AS subjects
		FROM teachers t
		LEFT JOIN class_allocations ca ON ca.teacher_id = t.id
		GROUP BY t.id, t.name
		ORDER BY t.name`)
	if err != nil {
		log.Printf("Error fetching teacher workload: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching workload"})
	}
	defer rows.Close()

	type workload struct {
		TeacherID   string `json:"teacher_id"`
		TeacherName string `json:"teacher_name"`
		Allocations int    `json:"allocations"`
		Classes     int    `json:"classes"`
		Subjects    int    `json:"subjects"`
	}

	result := []workload{}
	for rows.Next() {
		var w workload
		if err := rows.Scan(&w.TeacherID, &w.TeacherName, &w.Allocations, &w.Classes, &w.Subjects); err != nil {
			continue
		}
		result = append(result, w)
	}
	return c.JSON(result)
}
