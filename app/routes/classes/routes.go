package classes

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, config.GetDB())
	})
	api.Post("/", auth.RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateClassAPI(c, config.GetDB())
	})
}
