package subjects

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetSubjectsAPI(c, config.GetDB())
	})
	api.Post("/", auth.RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateSubjectAPI(c, config.GetDB())
	})
}
