package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/meeting-notes/docs"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"

	"github.com/johnquangdev/meeting-notes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	httpmw "github.com/johnquangdev/meeting-notes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes/internal/usecase/credential"
	"github.com/johnquangdev/meeting-notes/internal/usecase/summary"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// @title           Meeting Notes API
// @version         1.0
// @description     Turns meeting transcripts into structured summaries with one language model call

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(httpmw.RequestContext())

	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID, httpmw.HeaderOpenAIKey},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	storeCtx, cancelStore := context.WithTimeout(context.Background(), time.Minute)
	credentialRepo, closeStore, err := repository.NewCredentialRepositoryFromConfig(storeCtx, cfg)
	cancelStore()
	if err != nil {
		log.Fatalf("Failed to initialize credential store: %v", err)
	}
	defer closeStore()
	if !cfg.Redis.Enabled {
		log.Println("⚠️  Redis disabled, API key is kept in memory only")
	}

	log.Println("🔑 Initializing credential service...")
	credentialService := credential.NewService(credentialRepo, &cfg.Credential, logger)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 5*time.Second)
	seeded, err := credentialService.SeedIfEmpty(seedCtx, cfg.OpenAI.APIKey)
	cancelSeed()
	if err != nil {
		log.Printf("⚠️  Could not seed API key from OPENAI_API_KEY: %v", err)
	} else if seeded {
		log.Println("✅ API key seeded from OPENAI_API_KEY")
	}

	log.Println("🤖 Initializing AI components...")
	chatClient := pkgai.NewChatClient(&cfg.OpenAI)
	summaryService := summary.NewSummaryService(chatClient, &cfg.Summary, logger)
	if cfg.Summary.StrictValidation {
		log.Println("🧪 Strict summary validation enabled")
	}

	log.Println("🚀 Initializing handlers...")
	summaryHandler := handler.NewSummaryHandler(summaryService, credentialService, logger)
	credentialHandler := handler.NewCredentialHandler(credentialService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, summaryHandler, credentialHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🤖 Model: %s", chatClient.Model())
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
