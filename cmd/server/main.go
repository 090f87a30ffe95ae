// @title         resume-chat API
// @version       1.0
// @description   Backend for the portfolio resume chatbot: extracts text from an uploaded PDF resume and answers questions about it through an LLM completion provider.
// @BasePath      /api
// @schemes       http
// @host          localhost:5000
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	swagger "github.com/gofiber/swagger"

	_ "github.com/pranathimaddineni/portfolio/docs"

	// internal imports
	httpapi "github.com/pranathimaddineni/portfolio/api/http"
	"github.com/pranathimaddineni/portfolio/api/http/handlers"
	"github.com/pranathimaddineni/portfolio/pkg/chat"
	"github.com/pranathimaddineni/portfolio/pkg/config"
	"github.com/pranathimaddineni/portfolio/pkg/extract"
	"github.com/pranathimaddineni/portfolio/pkg/health"
	healthcheckers "github.com/pranathimaddineni/portfolio/pkg/health/checkers"
	"github.com/pranathimaddineni/portfolio/pkg/llm/openai"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		// Fiber's default 4MB body limit would reject uploads before the
		// handler runs; leave headroom for multipart framing.
		BodyLimit: int(cfg.MaxUploadBytes) + (1 << 20),
	})
	app.Use(cors.New())

	if cfg.OpenAIAPIKey == "" {
		// Not fatal: health reports the gap and chat requests fail explicitly.
		log.Printf("WARNING: OPENAI_API_KEY is not set; chat requests will fail until it is configured")
	}

	// Wire dependencies
	llmClient := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	extractSvc := extract.NewService(cfg.MaxUploadBytes, cfg.UploadDir)
	uploadHandler := handlers.NewUploadHandler(extractSvc)

	chatUC := chat.NewService(llmClient)
	chatHandler := handlers.NewChatHandler(chatUC)

	// Health service: compose checkers
	readiness := health.NewService(healthcheckers.NewCredentialChecker(cfg.OpenAIAPIKey))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	httpapi.Register(app, healthHandler, uploadHandler, chatHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Catch-all JSON 404 goes last
	httpapi.RegisterFallback(app)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	log.Printf("Health check: http://localhost:%s/api/health", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
