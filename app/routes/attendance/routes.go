package attendance

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	staff := auth.RequireRoles(models.RoleAdmin, models.RoleTeacher, models.RoleAccountant)

	api.Get("/", staff, func(c *fiber.Ctx) error {
		return GetAttendanceAPI(c, config.GetDB())
	})
	api.Get("/summary", staff, func(c *fiber.Ctx) error {
		return GetAttendanceSummaryAPI(c, config.GetDB())
	})
	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *fiber.Ctx) error {
		return MarkAttendanceAPI(c, config.GetDB())
	})
}
