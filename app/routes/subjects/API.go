package subjects

import (
	"database/sql"
	"log"
	"strings"

	"gj-schools/app/helpers"
	"gj-schools/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

func GetSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	rows, err := db.Query(
		`SELECT id, name, code, description, is_active, created_at
		 FROM subjects WHERE is_active = true ORDER BY name`)
	if err != nil {
		log.Printf("Error fetching subjects: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching subjects"})
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.IsActive, &s.CreatedAt); err != nil {
			continue
		}
		subjects = append(subjects, s)
	}
	return c.JSON(subjects)
}

type CreateSubjectRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Code        string  `json:"code" validate:"required,min=2,max=20"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func CreateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	var s models.Subject
	err := db.QueryRow(
		`INSERT INTO subjects (name, code, description)
		 VALUES ($1,$2,$3)
		 RETURNING id, name, code, description, is_active, created_at`,
		strings.TrimSpace(req.Name), strings.ToUpper(strings.TrimSpace(req.Code)), req.Description,
	).Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(400).JSON(fiber.Map{"message": "Subject already exists"})
		}
		log.Printf("Error creating subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error creating subject"})
	}

	return c.JSON(s)
}
