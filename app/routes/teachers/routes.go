package teachers

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	staff := auth.RequireRoles(models.RoleAdmin, models.RoleAccountant, models.RoleTeacher)
	admin := auth.RequireRoles(models.RoleAdmin)

	api.Get("/", staff, func(c *fiber.Ctx) error {
		return GetTeachersAPI(c, config.GetDB())
	})
	api.Get("/workload", admin, func(c *fiber.Ctx) error {
		return GetTeacherWorkloadAPI(c, config.GetDB())
	})
	api.Post("/", admin, func(c *fiber.Ctx) error {
		return CreateTeacherAPI(c, config.GetDB())
	})
	api.Delete("/:id", admin, func(c *fiber.Ctx) error {
		return DeleteTeacherAPI(c, config.GetDB())
	})
	api.Delete("/", admin, func(c *fiber.Ctx) error {
		return BulkDeleteTeachersAPI(c, config.GetDB())
	})
}
