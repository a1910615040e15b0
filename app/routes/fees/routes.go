package fees

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRoles(models.RoleAdmin, models.RoleAccountant, models.RoleTeacher), func(c *fiber.Ctx) error {
		return GetFeesAPI(c, config.GetDB())
	})
	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleAccountant), func(c *fiber.Ctx) error {
		return CreateFeeAPI(c, config.GetDB())
	})
}
