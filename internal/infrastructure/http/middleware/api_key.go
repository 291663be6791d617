package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/pkg/callcontext"
)

const (
	// HeaderOpenAIKey carries a per-request OpenAI API key
	HeaderOpenAIKey = "X-OpenAI-Key"

	apiKeyContextKey = "api_key"
)

// RequestContext copies the request ID into the request context so services
// can log it
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			ctx := callcontext.WithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// APIKeyHeader reads an OpenAI key from X-OpenAI-Key or a Bearer
// Authorization header and stores it on the echo context. Requests without
// one pass through untouched.
func APIKeyHeader() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key := extractAPIKey(c); key != "" {
				c.Set(apiKeyContextKey, key)
			}
			return next(c)
		}
	}
}

// APIKeyFromContext returns the key captured by APIKeyHeader, if any
func APIKeyFromContext(c echo.Context) string {
	key, _ := c.Get(apiKeyContextKey).(string)
	return key
}

func extractAPIKey(c echo.Context) string {
	header := c.Request().Header

	if key := strings.TrimSpace(header.Get(HeaderOpenAIKey)); key != "" {
		return key
	}

	// Expected format: "Bearer <key>"
	authHeader := header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
