package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	httpmw "github.com/johnquangdev/meeting-notes/internal/infrastructure/http/middleware"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	summaryHandler    *Summary
	credentialHandler *Credential
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, summaryHandler *Summary, credentialHandler *Credential) *Router {
	return &Router{
		cfg:               cfg,
		summaryHandler:    summaryHandler,
		credentialHandler: credentialHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupSummaryRoutes(v1)
	rt.setupCredentialRoutes(v1)
}

// setupSummaryRoutes configures transcript summarization routes
func (rt *Router) setupSummaryRoutes(g *echo.Group) {
	summaryGroup := g.Group("/summaries", httpmw.APIKeyHeader())

	if rt.summaryHandler != nil {
		summaryGroup.POST("", rt.summaryHandler.CreateSummary)
		summaryGroup.POST("/upload", rt.summaryHandler.UploadTranscript)
	} else {
		summaryGroup.POST("", rt.notImplemented)
		summaryGroup.POST("/upload", rt.notImplemented)
	}
}

// setupCredentialRoutes configures API key management routes
func (rt *Router) setupCredentialRoutes(g *echo.Group) {
	credentialGroup := g.Group("/credentials")

	if rt.credentialHandler != nil {
		credentialGroup.GET("", rt.credentialHandler.GetStatus)
		credentialGroup.PUT("", rt.credentialHandler.SaveKey)
		credentialGroup.DELETE("", rt.credentialHandler.ClearKey)
	} else {
		credentialGroup.GET("", rt.notImplemented)
		credentialGroup.PUT("", rt.notImplemented)
		credentialGroup.DELETE("", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := ""
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
