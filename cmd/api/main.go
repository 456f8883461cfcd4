package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"credtrack/internal/auth"
	"credtrack/internal/classify"
	"credtrack/internal/config"
	"credtrack/internal/database"
	"credtrack/internal/database/migration"
	handlers "credtrack/internal/http/handler"
	"credtrack/internal/http/middleware"
	"credtrack/internal/otel"
	"credtrack/internal/repository"
	"credtrack/internal/repository/postgres"
	"credtrack/internal/service"
	"credtrack/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := time.Local

	ctx := context.Background()

	// Tracing is a no-op when OTEL_SDK_DISABLED=true
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracer shutdown: %v", err)
		}
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	gate := auth.NewGate(cfg.Auth.SigningSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	classifier := classify.New(classify.ParseMode(cfg.Upload.Policy))

	// Initialize repositories and services
	accountRepo := postgres.NewAccountPostgres(db)
	activeDocs := postgres.NewDocumentPostgres(db, repository.SpaceActive)
	archivedDocs := postgres.NewDocumentPostgres(db, repository.SpaceArchived)
	companyRepo := postgres.NewCompanyDocumentPostgres(db)
	atomic := postgres.NewAtomicPostgres(db)

	svcs := handlers.Services{
		Accounts:  service.NewAccountService(accountRepo, gate),
		Documents: service.NewDocumentService(objStore, classifier, activeDocs, archivedDocs, accountRepo),
		Archive:   service.NewArchiveService(atomic),
		Company:   service.NewCompanyDocumentService(objStore, classifier, companyRepo),
		Stats:     service.NewStatsService(accountRepo, activeDocs),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, gate, svcs)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
