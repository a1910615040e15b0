package reports

import (
	"gj-schools/app/config"
	"gj-schools/app/models"
	"gj-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/financial-summary", auth.RequireRoles(models.RoleAdmin, models.RoleAccountant), func(c *fiber.Ctx) error {
		return GetFinancialSummaryAPI(c, config.GetDB())
	})
	api.Get("/student-performance", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *fiber.Ctx) error {
		return GetStudentPerformanceAPI(c, config.GetDB())
	})
	api.Get("/attendance", auth.RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *fiber.Ctx) error {
		return GetAttendanceReportAPI(c, config.GetDB())
	})
}
