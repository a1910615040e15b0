package allocations

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAllocationsRoutes(app *fiber.App) {
	api := app.Group("/api/allocations")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *fiber.Ctx) error {
		return GetAllocationsAPI(c, config.GetDB())
	})
	api.Post("/", auth.RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateAllocationAPI(c, config.GetDB())
	})
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteAllocationAPI(c, config.GetDB())
	})
}
