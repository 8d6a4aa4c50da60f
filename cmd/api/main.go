package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"jobfit-assistant/internal/config"
	"jobfit-assistant/internal/handlers"
	"jobfit-assistant/internal/repositories"
	"jobfit-assistant/internal/services"
)

func main() {
	// Load configuration (fatal if the Gemini credential is missing)
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize session store
	sessionRepo := repositories.NewSessionRepository()
	log.Println("✅ Session store initialized")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractorService := services.NewExtractorService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Retry.MaxAttempts,
		cfg.Retry.InitialDelay,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(sessionRepo, geminiService)
	log.Println("✅ Analyzer service initialized")

	// Initialize and start the session janitor
	janitor := services.NewJanitor(
		sessionRepo,
		storageService,
		cfg.Session.TTL,
		cfg.Session.SweepInterval,
	)
	janitor.Start()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionRepo)
	uploadHandler := handlers.NewUploadHandler(
		sessionRepo,
		storageService,
		extractorService,
		analyzerService,
		cfg.Storage.MaxFileSize,
	)
	analysisHandler := handlers.NewAnalysisHandler(analyzerService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Fit Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/sessions", sessionHandler.HandleCreateSession)
	api.Get("/sessions/:id", sessionHandler.HandleGetSession)
	api.Post("/sessions/:id/resume", uploadHandler.HandleUploadResume)
	api.Post("/sessions/:id/requirements", uploadHandler.HandleUploadRequirements)
	api.Post("/sessions/:id/alignment", analysisHandler.HandleAlignment)
	api.Post("/sessions/:id/ats", analysisHandler.HandleATS)
	api.Post("/sessions/:id/cover-letter", analysisHandler.HandleCoverLetter)
	api.Post("/sessions/:id/job-search", analysisHandler.HandleJobSearch)
	api.Post("/summarize", analysisHandler.HandleSummarize)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Fit Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/sessions",
				"GET /api/v1/sessions/:id",
				"POST /api/v1/sessions/:id/resume",
				"POST /api/v1/sessions/:id/requirements",
				"POST /api/v1/sessions/:id/alignment",
				"POST /api/v1/sessions/:id/ats",
				"POST /api/v1/sessions/:id/cover-letter",
				"POST /api/v1/sessions/:id/job-search",
				"POST /api/v1/summarize",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		janitor.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
