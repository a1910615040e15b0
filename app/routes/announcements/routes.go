package announcements

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAnnouncementsRoutes(app *fiber.App) {
	api := app.Group("/api/announcements")
	api.Use(auth.AuthMiddleware)

	publisher := auth.RequireRoles(models.RoleAdmin, models.RoleTeacher)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetAnnouncementsAPI(c, config.GetDB())
	})
	api.Post("/", publisher, func(c *fiber.Ctx) error {
		return CreateAnnouncementAPI(c, config.GetDB())
	})
	api.Put("/:id", publisher, func(c *fiber.Ctx) error {
		return UpdateAnnouncementAPI(c, config.GetDB())
	})
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteAnnouncementAPI(c, config.GetDB())
	})
}
