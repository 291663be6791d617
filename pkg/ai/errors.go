package ai

import (
	"errors"
	"fmt"
)

// Errors returned by ChatClient.Complete. Status-specific failures wrap one
// of these sentinels, so callers should match with errors.Is.
var (
	ErrAuthentication    = errors.New("invalid API key")
	ErrRateLimited       = errors.New("rate limit exceeded")
	ErrAccessDenied      = errors.New("API access forbidden")
	ErrMalformedResponse = errors.New("invalid response from AI service")
	ErrRequestFailed     = errors.New("AI service request failed")
)

// ServiceError is returned for any non-success status that has no more
// specific error kind.
type ServiceError struct {
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("AI service error: %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("AI service error: %d", e.StatusCode)
}
