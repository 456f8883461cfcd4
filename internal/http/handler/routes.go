package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"credtrack/internal/auth"
	"credtrack/internal/http/middleware"
	"credtrack/internal/model"
	"credtrack/internal/service"
)

// Services bundles everything the route surface depends on.
type Services struct {
	Accounts  service.AccountService
	Documents service.DocumentService
	Archive   service.ArchiveService
	Company   service.CompanyDocumentService
	Stats     service.StatsService
}

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches the route surface. Every mutating or cross-employee
// route sits behind Authenticate; admin routes additionally behind RequireRole,
// declared once on the group.
func RegisterRoutes(app *fiber.App, db *sql.DB, gate *auth.Gate, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/login", Login(svcs.Accounts))

	app.Post("/documents", middleware.Authenticate(gate), UploadDocument(svcs.Documents))

	admin := app.Group("/admin",
		middleware.Authenticate(gate),
		middleware.RequireRole(gate, model.RoleAdmin),
	)
	admin.Get("/employees", ListEmployees(svcs.Accounts))
	admin.Post("/employees", CreateEmployee(svcs.Accounts))
	admin.Post("/employees/:id/archive", ArchiveEmployee(svcs.Archive))
	admin.Get("/documents/:accountId", ListAccountDocuments(svcs.Documents))
	admin.Delete("/documents/:id", DeleteDocument(svcs.Documents))
	admin.Get("/company-documents", ListCompanyDocuments(svcs.Company))
	admin.Post("/company-documents", UploadCompanyDocument(svcs.Company))
	admin.Delete("/company-documents/:id", DeleteCompanyDocument(svcs.Company))
	admin.Get("/statistics", Statistics(svcs.Stats))
}
