package announcements

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

// GetAnnouncementsAPI lists announcements, newest and highest priority
// first. ?active_only=true restricts to active, unexpired notices.
func GetAnnouncementsAPI(c *fiber.Ctx, db *sql.DB) error {
	query := `
		SELECT a.id, a.title, a.content, a.category, a.target_audience, a.priority,
		       a.start_date, a.end_date, a.is_active, COALESCE(a.published_by::text, ''),
		       a.created_at, a.updated_at, COALESCE(u.name, '') AS published_by_name
		FROM announcements a
		LEFT JOIN users u ON a.published_by = u.id
		WHERE 1=1`
	var args []interface{}

	if c.Query("active_only") == "true" {
		query += ` AND a.is_active = true AND (a.end_date IS NULL OR a.end_date >= CURRENT_DATE)`
	}
	if category := c.Query("category"); category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND a.category = $%d", len(args))
	}

	query += ` ORDER BY a.priority DESC, a.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		log.Printf("Error fetching announcements: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error fetching announcements"})
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Category, &a.TargetAudience,
			&a.Priority, &a.StartDate, &a.EndDate, &a.IsActive, &a.PublishedBy,
			&a.CreatedAt, &a.UpdatedAt, &a.PublishedByName)
		if err != nil {
			continue
		}
		announcements = append(announcements, a)
	}
	return c.JSON(announcements)
}

type CreateAnnouncementRequest struct {
	Title          string  `json:"title" validate:"required,min=3,max=200"`
	Content        string  `json:"content" validate:"required,min=10,max=5000"`
	Category       string  `json:"category" validate:"omitempty,oneof=general academic event urgent holiday"`
	TargetAudience string  `json:"target_audience" validate:"omitempty,oneof=all students teachers parents"`
	Priority       string  `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	StartDate      string  `json:"start_date" validate:"omitempty"`
	EndDate        *string `json:"end_date" validate:"omitempty"`
}

func CreateAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	if req.Category == "" {
		req.Category = "general"
	}
	if req.TargetAudience == "" {
		req.TargetAudience = "all"
	}
	if req.Priority == "" {
		req.Priority = "normal"
	}
	if req.StartDate == "" {
		req.StartDate = time.Now().Format("2006-01-02")
	}

	var a models.Announcement
	err := db.QueryRow(
		`INSERT INTO announcements (title, content, category, target_audience, priority, start_date, end_date, published_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING id, title, content, category, target_audience, priority, start_date, end_date, is_active, published_by, created_at, updated_at`,
		req.Title, req.Content, req.Category, req.TargetAudience, req.Priority,
		req.StartDate, req.EndDate, auth.CurrentUser(c).UserID,
	).Scan(&a.ID, &a.Title, &a.Content, &a.Category, &a.TargetAudience, &a.Priority,
		&a.StartDate, &a.EndDate, &a.IsActive, &a.PublishedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		log.Printf("Error creating announcement: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error creating announcement"})
	}

	return c.JSON(a)
}

type UpdateAnnouncementRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=3,max=200"`
	Content        *string `json:"content" validate:"omitempty,min=10,max=5000"`
	Category       *string `json:"category" validate:"omitempty,oneof=general academic event urgent holiday"`
	TargetAudience *string `json:"target_audience" validate:"omitempty,oneof=all students teachers parents"`
	Priority       *string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	StartDate      *string `json:"start_date" validate:"omitempty"`
	EndDate        *string `json:"end_date" validate:"omitempty"`
	IsActive       *bool   `json:"is_active"`
}

func UpdateAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	var req UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := helpers.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": helpers.ValidationMessage(err)})
	}

	var a models.Announcement
	err := db.QueryRow(
		`UPDATE announcements
		 SET title = COALESCE($1, title),
		     content = COALESCE($2, content),
		     category = COALESCE($3, category),
		     target_audience = COALESCE($4, target_audience),
		     priority = COALESCE($5, priority),
		     start_date = COALESCE($6, start_date),
		     end_date = $7,
		     is_active = COALESCE($8, is_active),
		     updated_at = now()
		 WHERE id = $9
		 RETURNING id, title, content, category, target_audience, priority, start_date, end_date, is_active, published_by, created_at, updated_at`,
		req.Title, req.Content, req.Category, req.TargetAudience, req.Priority,
		req.StartDate, req.EndDate, req.IsActive, id,
	).Scan(&a.ID, &a.Title, &a.Content, &a.Category, &a.TargetAudience, &a.Priority,
		&a.StartDate, &a.EndDate, &a.IsActive, &a.PublishedBy, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"message": "Announcement not found"})
	}
	if err != nil {
		log.Printf("Error updating announcement: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error updating announcement"})
	}

	return c.JSON(a)
}

func DeleteAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	result, err := db.Exec(`DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting announcement: %v", err)
		return c.Status(500).JSON(fiber.Map{"message": "Error deleting announcement"})
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return c.Status(404).JSON(fiber.Map{"message": "Announcement not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Announcement deleted successfully"})
}
