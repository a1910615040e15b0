package students

import (
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"gj-schools/app/billing"
	"gj-schools/app/database"
	"gj-schools/app/helpers"
	"gj-schools/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetStudentsAPI lists students, optionally filtered with ?q= over name, id
// and email.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	search := strings.ToLower(strings.TrimSpace(c.Query("q")))

	students, err := database.GetStudents(db, search)
	if err != nil {
		log.Printf("Error fetching students: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching students"})
	}
	if students == nil {
		students = []models.Student{}
	}
	return c.JSON(students)
}

type CreateStudentRequest struct {
	ID          string  `json:"id" validate:"omitempty,max=50"`
	Name        string  `json:"name" validate:"required,min=1,max=300"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	DOB         string  `json:"dob" validate:"omitempty"`
	Class       *string `json:"class" validate:"omitempty,max=100"`
	ParentName  *string `json:"parent_name" validate:"omitempty,max=300"`
	ParentPhone *string `json:"parent_phone" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Status      string  `json:"status" validate:"omitempty,oneof=Active Inactive Pending"`
}

// CreateStudentAPI enrolls a student. Creation runs through the enrollment
// hook, so the student's first term-fee invoice is created in the same
// transaction; the invoice is implicit and not reported separately.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	var dob *time.Time
	if req.DOB != "" {
		parsed, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid date of birth"})
		}
		if parsed.After(time.Now()) {
			return c.Status(400).JSON(fiber.Map{"message": "Date of birth cannot be in the future"})
		}
		dob = &parsed
	}

	student := &models.Student{
		ID:          req.ID,
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Phone:       req.Phone,
		DOB:         dob,
		Class:       req.Class,
		ParentName:  req.ParentName,
		ParentPhone: req.ParentPhone,
		Address:     req.Address,
		Status:      req.Status,
	}

	if _, err := database.CreateStudentWithInvoice(db, student); err != nil {
		if errors.Is(err, billing.ErrDuplicateID) {
			return c.Status(400).JSON(fiber.Map{"message": "Student ID already exists"})
		}
		log.Printf("Error creating student: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error creating student"})
	}

	return c.JSON(student)
}

// GetStudentFeesAPI returns one student's fee statement with paid/balance
// aggregates.
func GetStudentFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	fees, err := database.GetStudentFees(db, studentID)
	if err != nil {
		log.Printf("Error fetching student fees: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching student fees"})
	}
	if fees == nil {
		fees = []database.StudentFeeSummary{}
	}
	return c.JSON(fees)
}

// DeleteStudentAPI removes a student and cascades to their payments, fees,
// grades and attendance.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	student, err := database.DeleteStudentCascade(db, id)
	if err != nil {
		if errors.Is(err, billing.ErrStudentNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		log.Printf("Delete student error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
		"student": student,
	})
}

// BulkDeleteStudentsAPI removes multiple students with the same cascade
// semantics as single delete.
func BulkDeleteStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Please provide an array of student IDs"})
	}

	deleted, err := database.DeleteStudentsCascade(db, req.IDs)
	if err != nil {
		log.Printf("Bulk delete students error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete students"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Students deleted successfully",
		"deletedCount": deleted,
	})
}
