package main

import (
	"log"
	"strings"

	"gj-schools/app/config"
	"gj-schools/app/database"
	"gj-schools/app/routes/allocations"
	"gj-schools/app/routes/announcements"
	"gj-schools/app/routes/attendance"
	"gj-schools/app/routes/auth"
	"gj-schools/app/routes/classes"
	"gj-schools/app/routes/fees"
	"gj-schools/app/routes/grades"
	"gj-schools/app/routes/payments"
	"gj-schools/app/routes/reports"
	"gj-schools/app/routes/students"
	"gj-schools/app/routes/subjects"
	"gj-schools/app/routes/teachers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
)

// customErrorHandler renders every unhandled error as JSON
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Money fields serialize as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize database
	config.Init()
	defer config.GetDB().Close()

	// Create tables if they don't exist yet
	if err := database.InitSchema(config.GetDB()); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app)

	// Setup fees routes
	fees.SetupFeesRoutes(app)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app)

	// Setup grades routes
	grades.SetupGradesRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup announcements routes
	announcements.SetupAnnouncementsRoutes(app)

	// Setup subjects routes
	subjects.SetupSubjectsRoutes(app)

	// Setup classes routes
	classes.SetupClassesRoutes(app)

	// Setup allocations routes
	allocations.SetupAllocationsRoutes(app)

	// Setup reports routes
	reports.SetupReportsRoutes(app)

	// Static files for the admin frontend
	app.Static("/", "./public")

	// Catch-all: unknown API paths get a 404, everything else falls
	// back to the SPA entry point
	app.Use("*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
		}
		return c.SendFile("./public/index.html")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
