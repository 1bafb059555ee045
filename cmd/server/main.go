package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/proforge/profilepdf/internal/config"
	"github.com/proforge/profilepdf/internal/database"
	"github.com/proforge/profilepdf/internal/handlers"
	"github.com/proforge/profilepdf/internal/middleware"
	"github.com/proforge/profilepdf/internal/storage"
	"github.com/proforge/profilepdf/internal/types"

	_ "github.com/proforge/profilepdf/docs/api" // Swagger docs
)

// @title ProfilePDF API
// @version 1.0.0
// @description Backend for composing company-profile PDF documents from reusable section templates

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Attachment blob storage
	store, err := storage.NewOS(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to open attachment storage: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(cfg),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("profilepdf")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.Version())

	// Create handlers
	authHandler := &handlers.AuthHandler{Cfg: cfg}
	documentHandler := &handlers.DocumentHandler{DB: db, Store: store}
	pageHandler := &handlers.PageHandler{DB: db}
	sectionHandler := &handlers.SectionHandler{DB: db}
	attachmentHandler := &handlers.AttachmentHandler{DB: db, Store: store}
	settingHandler := &handlers.SettingHandler{DB: db}
	templateHandler := &handlers.TemplateHandler{}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db, Store: store}

	// Public routes
	api.Get("/health", healthHandler.Health)
	api.Post("/auth/login", loginLimiter(), authHandler.Login)

	// Everything else requires a bearer token
	api.Use(middleware.Auth(cfg))

	api.Get("/pdfs", documentHandler.List)
	api.Post("/pdfs", documentHandler.Create)
	api.Get("/pdfs/:id", documentHandler.Get)
	api.Put("/pdfs/:id", documentHandler.Update)
	api.Delete("/pdfs/:id", documentHandler.Delete)

	api.Get("/pages", pageHandler.List)
	api.Post("/pages", pageHandler.Create)
	api.Post("/pages/reorder", pageHandler.Reorder)
	api.Get("/pages/:id", pageHandler.Get)
	api.Put("/pages/:id", pageHandler.Update)
	api.Delete("/pages/:id", pageHandler.Delete)

	api.Get("/sections", sectionHandler.List)
	api.Post("/sections", sectionHandler.Create)
	api.Post("/sections/reorder", sectionHandler.Reorder)
	api.Get("/sections/:id", sectionHandler.Get)
	api.Put("/sections/:id", sectionHandler.Update)
	api.Delete("/sections/:id", sectionHandler.Delete)

	api.Get("/attachments", attachmentHandler.List)
	api.Post("/attachments", attachmentHandler.Create)
	api.Post("/attachments/reorder", attachmentHandler.Reorder)
	api.Get("/attachments/:id", attachmentHandler.Get)
	api.Get("/attachments/:id/download", attachmentHandler.Download)
	api.Put("/attachments/:id", attachmentHandler.Update)
	api.Delete("/attachments/:id", attachmentHandler.Delete)

	api.Get("/settings", settingHandler.List)
	api.Post("/settings", settingHandler.Create)
	api.Get("/settings/:id", settingHandler.Get)
	api.Put("/settings/:id", settingHandler.Update)

	api.Get("/templates", templateHandler.List)
	api.Get("/templates/:name", templateHandler.Get)
	api.Post("/templates/:name/render", templateHandler.Render)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// loginLimiter throttles credential guessing on the login route.
func loginLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return types.RateLimited()
		},
	})
}
