package grades

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRoles(models.RoleAdmin, models.RoleAccountant, models.RoleTeacher), func(c *fiber.Ctx) error {
		return GetGradesAPI(c, config.GetDB())
	})
	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *fiber.Ctx) error {
		return CreateGradeAPI(c, config.GetDB())
	})
}
