package students

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	staff := auth.RequireRoles(models.RoleAdmin, models.RoleAccountant, models.RoleTeacher)
	office := auth.RequireRoles(models.RoleAdmin, models.RoleAccountant)
	admin := auth.RequireRoles(models.RoleAdmin)

	api.Get("/", staff, func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})
	api.Post("/", office, func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, config.GetDB())
	})
	api.Get("/:id/fees", staff, func(c *fiber.Ctx) error {
		return GetStudentFeesAPI(c, config.GetDB())
	})
	api.Delete("/:id", admin, func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, config.GetDB())
	})
	api.Delete("/", admin, func(c *fiber.Ctx) error {
		return BulkDeleteStudentsAPI(c, config.GetDB())
	})
}
